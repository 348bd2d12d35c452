package source

import (
	"errors"
	"fmt"
)

// ErrRange matches every *RangeError through errors.Is.
var ErrRange = errors.New("invalid source range")

// RangeError reports offsets that cannot form a Location, or a Location that
// does not fit the buffer it is applied to.
type RangeError struct {
	Start  int64
	End    int64
	Reason string
	Err    error // причина от safecast, если была
}

func (e *RangeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("range error [%d, %d): %s: %v", e.Start, e.End, e.Reason, e.Err)
	}
	return fmt.Sprintf("range error [%d, %d): %s", e.Start, e.End, e.Reason)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

func (e *RangeError) Unwrap() error {
	return e.Err
}
