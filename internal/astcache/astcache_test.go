package astcache

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"serpent/internal/testkit"
)

func fixtureUnit(t *testing.T, name string) *Unit {
	t.Helper()
	f, ok := testkit.Lookup(name)
	if !ok {
		t.Fatalf("no fixture %q", name)
	}
	st := f.Stream
	return NewUnit(name+".py", []byte(f.Source), f.Tree, &st)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, f := range testkit.Fixtures() {
		t.Run(f.Name, func(t *testing.T) {
			u := fixtureUnit(t, f.Name)
			var buf bytes.Buffer
			if err := Encode(&buf, u); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !reflect.DeepEqual(got.Tree, u.Tree) {
				t.Errorf("tree changed")
			}
			out, err := got.Stream().Reconstruct(got.Source)
			if err != nil {
				t.Fatalf("Reconstruct: %v", err)
			}
			if string(out) != f.Source {
				t.Errorf("reconstructed %q, want %q", out, f.Source)
			}
		})
	}
}

func TestDecode_RejectsSchemaAndCorruption(t *testing.T) {
	u := fixtureUnit(t, "assign")
	u.Schema = SchemaVersion + 1
	var buf bytes.Buffer
	if err := Encode(&buf, u); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(&buf); !errors.Is(err, ErrSchema) {
		t.Errorf("got %v, want ErrSchema", err)
	}

	u = fixtureUnit(t, "assign")
	u.Source = []byte("y = 1")
	buf.Reset()
	if err := Encode(&buf, u); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(&buf); !errors.Is(err, ErrCorrupt) {
		t.Errorf("got %v, want ErrCorrupt", err)
	}
}

func TestWriteFile_ReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "unit.mp")
	if err := WriteFile(path, fixtureUnit(t, "assign")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := WriteFile(path, fixtureUnit(t, "attribute")); err != nil {
		t.Fatalf("WriteFile again: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got.Source) != "a.b" {
		t.Errorf("source = %q", got.Source)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("leftover temp files: %v", entries)
	}
}

func TestDiskCache_PutGet(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	u := fixtureUnit(t, "function_def")

	if _, ok, err := c.Get(u.ContentHash); ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}
	if err := c.Put(u); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := c.Lookup(u.Source)
	if err != nil || !ok {
		t.Fatalf("Lookup: ok=%v err=%v", ok, err)
	}
	if got.Path != u.Path || !reflect.DeepEqual(got.Tree, u.Tree) {
		t.Errorf("cached unit differs")
	}

	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, ok, _ := c.Get(u.ContentHash); ok {
		t.Errorf("hit after DropAll")
	}
	if err := c.Put(u); err != nil {
		t.Errorf("Put after DropAll: %v", err)
	}
}

func TestDiskCache_SchemaMismatchIsMiss(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	u := fixtureUnit(t, "comment")
	u.Schema = 99
	if err := c.Put(u); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(u.ContentHash); ok || err != nil {
		t.Errorf("stale schema: ok=%v err=%v, want a clean miss", ok, err)
	}
}

func TestDiskCache_Concurrent(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for _, f := range testkit.Fixtures() {
		u := fixtureUnit(t, f.Name)
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := c.Put(u); err != nil {
				t.Errorf("Put: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, _, err := c.Get(u.ContentHash); err != nil {
				t.Errorf("Get: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestOpen_DefaultDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)
	c, err := Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if want := filepath.Join(base, "serpent"); c.Dir() != want {
		t.Errorf("dir = %q, want %q", c.Dir(), want)
	}
}

func TestNilCache(t *testing.T) {
	var c *DiskCache
	if err := c.Put(&Unit{}); err != nil {
		t.Errorf("Put on nil: %v", err)
	}
	if _, ok, err := c.Get(Digest{}); ok || err != nil {
		t.Errorf("Get on nil: %v %v", ok, err)
	}
}
