package types

import "github.com/iammosespaulr/noms/ref"

// Value is the interface all Noms values implement. Values are immutable;
// Ref() is the content hash of the value's canonical encoding.
type Value interface {
	Equals(other Value) bool
	Ref() ref.Ref
	// Chunks returns the refs of all chunks reachable from this value, i.e.
	// the targets of every Ref embedded in it.
	Chunks() []Ref
	Type() *Type
}

// ValueReader is an interface that knows how to read Noms Values, e.g.
// datas.DataStore. Reads through a ValueReader must be equivalent to decoding
// the corresponding chunk, whether or not a cache sits in between.
type ValueReader interface {
	ReadValue(r ref.Ref) Value
}

// ValueWriter is an interface that knows how to write Noms Values. The
// returned Ref is typed Ref<T> where T is the type of v.
type ValueWriter interface {
	WriteValue(v Value) Ref
}

type ValueReadWriter interface {
	ValueReader
	ValueWriter
}
