package diagfmt

import (
	"fmt"

	"serpent/internal/source"
)

func formatSpan(loc source.Location, file *source.File) string {
	if file != nil {
		start, end := file.Resolve(loc)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", loc.Start(), loc.End())
}

func formatPath(file *source.File, mode PathMode, baseDir string) string {
	if file == nil {
		return "<input>"
	}
	return file.FormatPath(mode.String(), baseDir)
}
