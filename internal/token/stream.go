package token

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"serpent/internal/source"
)

// Stream is the producer's side channel for exact source reconstruction:
// the locations of all significant tokens plus all trivia, each in offset order.
type Stream struct {
	Tokens []source.Location
	Trivia []Trivia
}

// CoverageError reports the first offset where tokens and trivia fail to tile
// the buffer.
type CoverageError struct {
	Offset  uint32
	Problem string // "gap", "overlap" или "overrun"
	Loc     source.Location
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("stream coverage: %s at offset %d (piece %v)", e.Problem, e.Offset, e.Loc)
}

func (s Stream) pieces() []source.Location {
	out := make([]source.Location, 0, len(s.Tokens)+len(s.Trivia))
	out = append(out, s.Tokens...)
	for _, tv := range s.Trivia {
		out = append(out, tv.Loc)
	}
	slices.SortFunc(out, source.Compare)
	return out
}

// Check verifies that token and trivia locations are disjoint and cover
// [0, srcLen) with no gaps. Empty pieces are ignored.
func (s Stream) Check(srcLen int) error {
	limit, err := safecast.Conv[uint32](srcLen)
	if err != nil {
		return fmt.Errorf("stream coverage: source length %d: %w", srcLen, err)
	}
	var cursor uint32
	for _, p := range s.pieces() {
		if p.Empty() {
			continue
		}
		switch {
		case p.Start() > cursor:
			return &CoverageError{Offset: cursor, Problem: "gap", Loc: p}
		case p.Start() < cursor:
			return &CoverageError{Offset: p.Start(), Problem: "overlap", Loc: p}
		}
		cursor = p.End()
	}
	if cursor > limit {
		return &CoverageError{Offset: limit, Problem: "overrun"}
	}
	if cursor < limit {
		return &CoverageError{Offset: cursor, Problem: "gap"}
	}
	return nil
}

// Reconstruct concatenates every piece in offset order. After a successful
// Check the result is byte-identical to src.
func (s Stream) Reconstruct(src []byte) ([]byte, error) {
	if err := s.Check(len(src)); err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(src))
	for _, p := range s.pieces() {
		b, err := source.Slice(src, p)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// Between returns the trivia lying entirely inside [from, to). Trivia must be
// sorted by location, which producers emit naturally.
func (s Stream) Between(from, to uint32) []Trivia {
	lo, _ := slices.BinarySearchFunc(s.Trivia, from, func(tv Trivia, off uint32) int {
		switch {
		case tv.Loc.Start() < off:
			return -1
		case tv.Loc.Start() > off:
			return 1
		}
		return 0
	})
	hi := lo
	for hi < len(s.Trivia) && s.Trivia[hi].Loc.End() <= to {
		hi++
	}
	return s.Trivia[lo:hi]
}

// Comments returns only the comment trivia, in order.
func (s Stream) Comments() []Trivia {
	var out []Trivia
	for _, tv := range s.Trivia {
		if tv.IsComment() {
			out = append(out, tv)
		}
	}
	return out
}
