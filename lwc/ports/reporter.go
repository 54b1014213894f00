package ports

import (
	"github.com/ZanzyTHEbar/line-word-count/lwc/aggregate"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"
)

// Reporter renders the result of a run.
type Reporter interface {
	Item(r types.Result) error
	Total(t aggregate.GrandTotal) error
}

// Render feeds out to rep: every item in origin order, then the total when
// the outcome asks for one.
func Render(rep Reporter, out *aggregate.Outcome) error {
	for _, r := range out.Items {
		if err := rep.Item(r); err != nil {
			return err
		}
	}
	if out.ShowTotal() {
		return rep.Total(out.Total)
	}
	return nil
}
