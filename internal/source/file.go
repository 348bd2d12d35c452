package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
)

// FileFlags encodes metadata about a source file.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File is a source buffer together with the index needed to turn
// Locations back into text and line/column positions.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32 // смещения всех '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// NewFile indexes already-normalized content.
func NewFile(path string, content []byte, flags FileFlags) (*File, error) {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		return nil, fmt.Errorf("%s: source too large: %w", path, err)
	}
	return &File{
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}, nil
}

// NewVirtualFile wraps in-memory source (tests, stdin, cached units).
func NewVirtualFile(name string, content []byte) (*File, error) {
	return NewFile(name, content, FileVirtual)
}

// Load reads a file from disk and normalizes CRLF/BOM before indexing.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return NewFile(path, content, flags)
}

// LoadRaw reads a file byte for byte. Producers index the original bytes,
// so trees and trivia streams are matched against this form, not Load's.
func LoadRaw(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFile(path, content, 0)
}

// Len returns the content length in bytes.
func (f *File) Len() uint32 {
	return uint32(len(f.Content)) // проверено в NewFile
}

// Slice returns the exact bytes covered by loc.
func (f *File) Slice(loc Location) ([]byte, error) {
	return Slice(f.Content, loc)
}

// Slice applies loc to an arbitrary buffer. Locations that run past the end
// of the buffer yield *RangeError.
func Slice(src []byte, loc Location) ([]byte, error) {
	if int(loc.end) > len(src) {
		return nil, &RangeError{
			Start:  int64(loc.start),
			End:    int64(loc.end),
			Reason: fmt.Sprintf("beyond buffer of %d bytes", len(src)),
		}
	}
	return src[loc.start:loc.end], nil
}

// Resolve converts a location into line and column positions.
func (f *File) Resolve(loc Location) (start, end LineCol) {
	return toLineCol(f.LineIdx, loc.start), toLineCol(f.LineIdx, loc.end)
}

// GetLine returns line lineNum (1-based) without its terminator, or "" if
// there is no such line.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	var start, end uint32
	lenLineIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent := f.Len()

	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start > lenContent {
		return ""
	}
	// CRLF оставляем в Content, но в строке без '\r'
	return strings.TrimSuffix(string(f.Content[start:end]), "\r")
}

// FormatPath renders the path for display: "absolute", "relative" (to
// baseDir, or the working directory), "basename" or "auto".
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			// Если базовая директория не указана, используем текущую
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		abs, err := filepath.Abs(f.Path)
		if err != nil {
			return f.Path
		}
		if rel, err := filepath.Rel(baseDir, abs); err == nil {
			return filepath.ToSlash(rel)
		}
		return f.Path

	case "basename":
		return filepath.Base(f.Path)

	case "auto":
		// Auto: короткий или относительный путь — как есть, иначе basename
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return filepath.Base(f.Path)

	default:
		return f.Path
	}
}
