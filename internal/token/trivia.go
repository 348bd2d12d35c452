package token

import (
	"fmt"

	"serpent/internal/source"
)

type TriviaKind uint8

const (
	TriviaWhiteSpace TriviaKind = iota
	TriviaNewline
	TriviaComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaWhiteSpace:
		return "WhiteSpace"
	case TriviaNewline:
		return "Newline"
	case TriviaComment:
		return "Comment"
	}
	return fmt.Sprintf("TriviaKind(%d)", uint8(k))
}

// Trivia is one non-semantic lexical fragment.
type Trivia struct {
	Kind TriviaKind
	Loc  source.Location
}

func NewTrivia(kind TriviaKind, loc source.Location) Trivia {
	return Trivia{Kind: kind, Loc: loc}
}

// String renders the debug placeholder for the kind. It is not the source
// text; use Text for that.
func (t Trivia) String() string {
	switch t.Kind {
	case TriviaWhiteSpace:
		return "' '"
	case TriviaNewline:
		return "<NEWLINE>"
	case TriviaComment:
		return "<COMMENT>"
	}
	return "<?>"
}

// Text slices the exact fragment out of src.
func (t Trivia) Text(src []byte) ([]byte, error) {
	return source.Slice(src, t.Loc)
}

func (t Trivia) IsComment() bool {
	return t.Kind == TriviaComment
}
