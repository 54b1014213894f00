package counter

type utf8Step uint8

const (
	utf8Pending utf8Step = iota
	utf8Complete
	utf8Invalid
)

// utf8State validates UTF-8 one byte at a time so sequences may straddle read
// buffers. It rejects overlong encodings, surrogates and values above U+10FFFF.
type utf8State struct {
	pending uint8 // continuation bytes still expected
	lo, hi  byte  // accepted range for the next continuation byte
}

func (s *utf8State) step(b byte) utf8Step {
	if s.pending == 0 {
		switch {
		case b < 0x80:
			return utf8Complete
		case b >= 0xC2 && b <= 0xDF:
			s.expect(1, 0x80, 0xBF)
		case b == 0xE0:
			s.expect(2, 0xA0, 0xBF)
		case b == 0xED:
			s.expect(2, 0x80, 0x9F)
		case b >= 0xE1 && b <= 0xEF:
			s.expect(2, 0x80, 0xBF)
		case b == 0xF0:
			s.expect(3, 0x90, 0xBF)
		case b >= 0xF1 && b <= 0xF3:
			s.expect(3, 0x80, 0xBF)
		case b == 0xF4:
			s.expect(3, 0x80, 0x8F)
		default:
			return utf8Invalid
		}
		return utf8Pending
	}

	if b < s.lo || b > s.hi {
		return utf8Invalid
	}
	s.pending--
	s.lo, s.hi = 0x80, 0xBF
	if s.pending == 0 {
		return utf8Complete
	}
	return utf8Pending
}

func (s *utf8State) expect(n uint8, lo, hi byte) {
	s.pending = n
	s.lo, s.hi = lo, hi
}
