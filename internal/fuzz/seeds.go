package fuzztests

import (
	"bytes"
	"testing"

	"serpent/internal/ast"
	"serpent/internal/astcache"
	"serpent/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

// addTreeSeeds adds every reference fixture encoded as a bare tree.
func addTreeSeeds(f *testing.F) {
	for _, fx := range testkit.Fixtures() {
		data, err := ast.Marshal(fx.Tree)
		if err != nil {
			f.Fatalf("seed %s: %v", fx.Name, err)
		}
		f.Add(data)
	}
	// пара заведомо битых входов
	f.Add([]byte{})
	f.Add([]byte{0x94, 0x05, 0x01, 0xa4, 'P', 'a', 's', 's', 0xc0})
}

// addUnitSeeds adds every reference fixture encoded as a cache unit.
func addUnitSeeds(f *testing.F) {
	for _, fx := range testkit.Fixtures() {
		st := fx.Stream
		var buf bytes.Buffer
		if err := astcache.Encode(&buf, astcache.NewUnit(fx.Name+".py", []byte(fx.Source), fx.Tree, &st)); err != nil {
			f.Fatalf("seed %s: %v", fx.Name, err)
		}
		f.Add(buf.Bytes())
	}
	f.Add([]byte{0x80})
}

func clip(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
