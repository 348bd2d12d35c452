package ast

import (
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"

	"serpent/internal/source"
)

// Wire form of a node: [start, end, tag, payload]. tag is the variant type
// name for union payloads and "" for record payloads (Arg, Keyword, Alias).
// A missing payload is encoded as tag "" with nil.

var variants = map[string]reflect.Type{}

func register(protos ...any) {
	for _, p := range protos {
		t := reflect.TypeOf(p).Elem()
		variants[t.Name()] = t
	}
}

func init() {
	register(
		(*Module)(nil), (*Interactive)(nil), (*Expression)(nil), (*FunctionType)(nil),

		(*FunctionDef)(nil), (*AsyncFunctionDef)(nil), (*ClassDef)(nil), (*Return)(nil),
		(*Delete)(nil), (*Assign)(nil), (*AugAssign)(nil), (*AnnAssign)(nil), (*For)(nil),
		(*AsyncFor)(nil), (*While)(nil), (*If)(nil), (*With)(nil), (*AsyncWith)(nil),
		(*Match)(nil), (*Raise)(nil), (*Try)(nil), (*Assert)(nil), (*Import)(nil),
		(*ImportFrom)(nil), (*Global)(nil), (*Nonlocal)(nil), (*ExprStmt)(nil),
		(*Pass)(nil), (*Break)(nil), (*Continue)(nil),

		(*BoolOp)(nil), (*NamedExpr)(nil), (*BinOp)(nil), (*UnaryOp)(nil), (*Lambda)(nil),
		(*IfExp)(nil), (*Dict)(nil), (*Set)(nil), (*ListComp)(nil), (*SetComp)(nil),
		(*DictComp)(nil), (*GeneratorExp)(nil), (*Await)(nil), (*Yield)(nil),
		(*YieldFrom)(nil), (*Compare)(nil), (*Call)(nil), (*FormattedValue)(nil),
		(*JoinedStr)(nil), (*Constant)(nil), (*Attribute)(nil), (*Subscript)(nil),
		(*Starred)(nil), (*Name)(nil), (*List)(nil), (*Tuple)(nil), (*Slice)(nil),

		(*MatchValue)(nil), (*MatchSingleton)(nil), (*MatchSequence)(nil),
		(*MatchMapping)(nil), (*MatchClass)(nil), (*MatchStar)(nil), (*MatchAs)(nil),
		(*MatchOr)(nil),

		(*ExceptHandler)(nil),
	)
}

// KindName returns the variant name of a payload ("Assign", "Name", ...),
// or the record name for Arg/Keyword/Alias payloads.
func KindName(v any) string {
	if v == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (n Node[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(4); err != nil {
		return err
	}
	if err := enc.EncodeUint32(n.Loc.Start()); err != nil {
		return err
	}
	if err := enc.EncodeUint32(n.Loc.End()); err != nil {
		return err
	}
	payload := any(n.Payload)
	tag := ""
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		if isNilPayload(payload) {
			payload = nil
		}
		if payload != nil {
			tag = KindName(payload)
		}
	}
	if err := enc.EncodeString(tag); err != nil {
		return err
	}
	return enc.Encode(payload)
}

// DecodeMsgpack implements msgpack.CustomDecoder. Union payloads are
// rebuilt from their tag; a tag that names no variant of T is an error.
func (n *Node[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	l, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if l != 4 {
		return fmt.Errorf("ast: node: want 4 elements, got %d", l)
	}
	start, err := dec.DecodeUint32()
	if err != nil {
		return err
	}
	end, err := dec.DecodeUint32()
	if err != nil {
		return err
	}
	loc, err := source.NewLocation(int(start), int(end))
	if err != nil {
		return fmt.Errorf("ast: node location: %w", err)
	}
	tag, err := dec.DecodeString()
	if err != nil {
		return err
	}

	var zero T
	n.Loc = loc
	n.Payload = zero
	if tag == "" {
		if reflect.TypeFor[T]().Kind() == reflect.Interface {
			return dec.Skip() // nil payload
		}
		return dec.Decode(&n.Payload)
	}

	typ, ok := variants[tag]
	if !ok {
		return fmt.Errorf("ast: unknown node kind %q", tag)
	}
	ptr := reflect.New(typ)
	if err := dec.Decode(ptr.Interface()); err != nil {
		return fmt.Errorf("ast: %s: %w", tag, err)
	}
	payload, ok := ptr.Interface().(T)
	if !ok {
		return fmt.Errorf("ast: %s is not a %s", tag, reflect.TypeFor[T]())
	}
	n.Payload = payload
	return nil
}

// Marshal encodes any node (usually a *Mod) with msgpack.
func Marshal[T any](n *Node[T]) ([]byte, error) {
	return msgpack.Marshal(n)
}

// Unmarshal decodes a node previously produced by Marshal.
func Unmarshal[T any](data []byte) (*Node[T], error) {
	var n Node[T]
	if err := msgpack.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}
