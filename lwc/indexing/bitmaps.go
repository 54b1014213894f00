package indexing

import (
	"github.com/RoaringBitmap/roaring/roaring64"
)

// FailureSet records the origin indices of failed items. It stays compact even
// when per-item results are discarded in totals-only runs.
// Not safe for concurrent use; the aggregator serializes access.
type FailureSet struct {
	bm *roaring64.Bitmap
}

func NewFailureSet() *FailureSet {
	return &FailureSet{bm: roaring64.New()}
}

// Add marks originIndex as failed.
func (fs *FailureSet) Add(originIndex uint64) {
	fs.bm.Add(originIndex)
}

func (fs *FailureSet) Contains(originIndex uint64) bool {
	return fs.bm.Contains(originIndex)
}

func (fs *FailureSet) Len() uint64 {
	return fs.bm.GetCardinality()
}

// Indices returns the failed origin indices in ascending order.
func (fs *FailureSet) Indices() []uint64 {
	return fs.bm.ToArray()
}

// Union returns a new set holding the members of both sets.
func (fs *FailureSet) Union(other *FailureSet) *FailureSet {
	c := fs.bm.Clone()
	if other != nil {
		c.Or(other.bm)
	}
	return &FailureSet{bm: c}
}
