package source

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Location is a half-open byte range [start, end) into a source buffer.
// The zero value is the empty range at offset 0.
type Location struct {
	start uint32 // в байтах включительно
	end   uint32 // в байтах не включительно
}

// NewLocation validates raw scan offsets and builds a Location.
// Negative offsets, offsets wider than 32 bits and start > end are rejected
// with *RangeError.
func NewLocation(start, end int) (Location, error) {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		return Location{}, &RangeError{Start: int64(start), End: int64(end), Reason: "start offset out of range", Err: err}
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		return Location{}, &RangeError{Start: int64(start), End: int64(end), Reason: "end offset out of range", Err: err}
	}
	if s > e {
		return Location{}, &RangeError{Start: int64(start), End: int64(end), Reason: "start is after end"}
	}
	return Location{start: s, end: e}, nil
}

// MustLocation is NewLocation for fixtures and tests: it panics on invalid offsets.
func MustLocation(start, end int) Location {
	loc, err := NewLocation(start, end)
	if err != nil {
		panic(err)
	}
	return loc
}

func (l Location) Start() uint32 {
	return l.start
}

func (l Location) End() uint32 {
	return l.end
}

func (l Location) Len() uint32 {
	return l.end - l.start
}

func (l Location) Empty() bool {
	return l.start == l.end
}

// Compare orders locations by start, then by end.
// It returns -1, 0 or +1 and is suitable for slices.SortFunc and slices.BinarySearchFunc.
func Compare(a, b Location) int {
	switch {
	case a.start < b.start:
		return -1
	case a.start > b.start:
		return 1
	case a.end < b.end:
		return -1
	case a.end > b.end:
		return 1
	}
	return 0
}

func (l Location) Less(other Location) bool {
	return Compare(l, other) < 0
}

// Contains reports whether other lies entirely within l.
func (l Location) Contains(other Location) bool {
	return l.start <= other.start && other.end <= l.end
}

// Cover returns the smallest location spanning both l and other.
func (l Location) Cover(other Location) Location {
	if other.start < l.start {
		l.start = other.start
	}
	if other.end > l.end {
		l.end = other.end
	}
	return l
}

func (l Location) String() string {
	return fmt.Sprintf("[%d, %d)", l.start, l.end)
}

var (
	_ msgpack.CustomEncoder = Location{}
	_ msgpack.CustomDecoder = (*Location)(nil)
)

// EncodeMsgpack writes the location as a [start, end] pair.
func (l Location) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeUint32(l.start); err != nil {
		return err
	}
	return enc.EncodeUint32(l.end)
}

// DecodeMsgpack reads a [start, end] pair and re-validates it.
func (l *Location) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("location: want 2 elements, got %d", n)
	}
	s, err := dec.DecodeUint32()
	if err != nil {
		return err
	}
	e, err := dec.DecodeUint32()
	if err != nil {
		return err
	}
	if s > e {
		return &RangeError{Start: int64(s), End: int64(e), Reason: "start is after end"}
	}
	*l = Location{start: s, end: e}
	return nil
}
