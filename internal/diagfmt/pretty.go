package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"serpent/internal/diag"
	"serpent/internal/source"
)

type palette struct {
	on      bool
	err     *color.Color
	warn    *color.Color
	info    *color.Color
	code    *color.Color
	gutter  *color.Color
	caret   *color.Color
	message *color.Color
}

func newPalette(on bool) palette {
	p := palette{
		on:      on,
		err:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgCyan, color.Bold),
		code:    color.New(color.FgMagenta),
		gutter:  color.New(color.FgBlue),
		caret:   color.New(color.FgGreen, color.Bold),
		message: color.New(color.Bold),
	}
	// цвет решает вызывающий, а не color.NoColor
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.message} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Location, затем Notes.
// file may be nil, in which case only raw offsets are printed.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts PrettyOpts) {
	p := newPalette(opts.Color)
	path := formatPath(file, opts.PathMode, opts.BaseDir)

	for _, d := range bag.Items() {
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			position(path, file, d.Primary),
			p.severity(d.Severity).Sprint(d.Severity),
			p.code.Sprint(d.Code.ID()),
			p.message.Sprint(d.Message))
		if file != nil {
			excerpt(w, p, file, d.Primary, int(opts.Context))
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  note: %s: %s\n", position(path, file, n.Loc), n.Msg)
		}
	}
}

func position(path string, file *source.File, loc source.Location) string {
	if file == nil {
		return fmt.Sprintf("%s:%s", path, formatSpan(loc, nil))
	}
	start, _ := file.Resolve(loc)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

// excerpt prints the first line of loc with a caret underline, plus up to
// ctx lines of context on each side.
func excerpt(w io.Writer, p palette, file *source.File, loc source.Location, ctx int) {
	if int(loc.End()) > len(file.Content) {
		return
	}
	start, end := file.Resolve(loc)
	lines, err := safecast.Conv[uint32](len(file.LineIdx) + 1)
	if err != nil {
		return
	}
	span, err := safecast.Conv[uint32](max(ctx, 0))
	if err != nil {
		return
	}
	first := max(start.Line, span+1) - span
	last := min(start.Line+span, lines)
	gutterWidth := len(fmt.Sprint(last))

	for n := first; n <= last; n++ {
		text := file.GetLine(n)
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, n), text)
		if n != start.Line {
			continue
		}

		col := min(int(start.Col)-1, len(text))
		stop := len(text)
		if end.Line == start.Line {
			stop = min(max(int(end.Col)-1, col), len(text))
		}
		width := max(runewidth.StringWidth(text[col:stop]), 1)
		marks := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "%s %s%s\n",
			p.gutter.Sprint(strings.Repeat(" ", gutterWidth)+" |"),
			pad(text[:col]),
			p.caret.Sprint(marks))
	}
}

// pad returns blank space as wide as prefix on screen. Tabs are kept so the
// caret lines up whatever the terminal's tab width.
func pad(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}
