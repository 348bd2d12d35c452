package astcache

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"serpent/internal/ast"
	"serpent/internal/source"
	"serpent/internal/token"
)

// SchemaVersion is bumped whenever the Unit layout or the node wire form changes.
const SchemaVersion uint16 = 1

var (
	// ErrSchema marks a unit written by a different SchemaVersion.
	ErrSchema = errors.New("astcache: schema mismatch")
	// ErrCorrupt marks a unit whose source does not match its ContentHash.
	ErrCorrupt = errors.New("astcache: content hash mismatch")
)

// Digest is a sha256 of source bytes.
type Digest [32]byte

func HashSource(src []byte) Digest {
	return sha256.Sum256(src)
}

// Unit is the persisted form of one parsed file: source, tree and the
// token/trivia stream needed to reproduce the source exactly.
type Unit struct {
	Schema      uint16
	Path        string
	Source      []byte
	ContentHash Digest
	Tree        ast.Mod
	Tokens      []source.Location
	Trivia      []token.Trivia
}

// NewUnit captures a parse result. st may be nil when the producer keeps no
// trivia.
func NewUnit(path string, src []byte, tree *ast.Mod, st *token.Stream) *Unit {
	u := &Unit{
		Schema:      SchemaVersion,
		Path:        path,
		Source:      src,
		ContentHash: HashSource(src),
	}
	if tree != nil {
		u.Tree = *tree
	}
	if st != nil {
		u.Tokens = st.Tokens
		u.Trivia = st.Trivia
	}
	return u
}

// Stream reassembles the token/trivia stream.
func (u *Unit) Stream() token.Stream {
	return token.Stream{Tokens: u.Tokens, Trivia: u.Trivia}
}

// Encode writes u as a single msgpack value.
func Encode(w io.Writer, u *Unit) error {
	if u == nil {
		return fmt.Errorf("astcache: nil unit")
	}
	return msgpack.NewEncoder(w).Encode(u)
}

// Decode reads a unit and checks its schema and content hash.
func Decode(r io.Reader) (*Unit, error) {
	var u Unit
	if err := msgpack.NewDecoder(r).Decode(&u); err != nil {
		return nil, fmt.Errorf("astcache: decode: %w", err)
	}
	if u.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchema, u.Schema, SchemaVersion)
	}
	if HashSource(u.Source) != u.ContentHash {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, u.Path)
	}
	return &u, nil
}

// WriteFile encodes u to path, replacing any previous file atomically.
func WriteFile(path string, u *Unit) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	renamed := false
	defer func() {
		if renamed {
			return
		}
		// временный файл остался только при ошибке
		if rmErr := os.Remove(f.Name()); rmErr != nil && err == nil {
			err = rmErr
		}
	}()

	if err = Encode(f, u); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	if err = os.Rename(f.Name(), path); err != nil {
		return err
	}
	renamed = true
	return nil
}

// ReadFile decodes a unit written by WriteFile.
func ReadFile(path string) (u *Unit, err error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return Decode(f)
}
