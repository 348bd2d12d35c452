package diagfmt

import (
	"fmt"
	"io"

	"serpent/internal/source"
	"serpent/internal/token"
)

// Trivia выводит токены и trivia в порядке смещений: для trivia печатается
// плейсхолдер, для токена — его текст (если есть file).
func Trivia(w io.Writer, st token.Stream, file *source.File) error {
	type piece struct {
		loc    source.Location
		trivia *token.Trivia
	}
	pieces := make([]piece, 0, len(st.Tokens)+len(st.Trivia))
	ti, vi := 0, 0
	for ti < len(st.Tokens) || vi < len(st.Trivia) {
		takeTrivia := ti == len(st.Tokens) ||
			(vi < len(st.Trivia) && source.Compare(st.Trivia[vi].Loc, st.Tokens[ti]) < 0)
		if takeTrivia {
			pieces = append(pieces, piece{loc: st.Trivia[vi].Loc, trivia: &st.Trivia[vi]})
			vi++
			continue
		}
		pieces = append(pieces, piece{loc: st.Tokens[ti]})
		ti++
	}

	for i, p := range pieces {
		kind, text := "Token", ""
		if p.trivia != nil {
			kind, text = p.trivia.Kind.String(), p.trivia.String()
		} else if file != nil {
			b, err := file.Slice(p.loc)
			if err != nil {
				return err
			}
			text = fmt.Sprintf("%q", b)
		}
		fmt.Fprintf(w, "%3d: %-10s %-12s at %s\n", i+1, kind, text, formatSpan(p.loc, file))
	}
	return nil
}
