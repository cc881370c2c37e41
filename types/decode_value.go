package types

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/iammosespaulr/noms/chunks"
	"github.com/iammosespaulr/noms/d"
	"github.com/iammosespaulr/noms/ref"
)

// DecodeChunk decodes a value from its canonical encoding. It is not
// considered an error for c to be empty; in this case, the function simply
// returns nil. Corrupt data panics through d.Chk and is surfaced verbatim to
// the caller that requested the read.
func DecodeChunk(c chunks.Chunk) Value {
	if c.IsEmpty() {
		return nil
	}

	dec := valueDecoder{bytes.NewReader(c.Data())}
	v := dec.readValue()
	d.Chk.Equal(0, dec.r.Len(), "Trailing bytes after decoded value")
	return v
}

type valueDecoder struct {
	r *bytes.Reader
}

func (dec valueDecoder) readValue() Value {
	t := dec.readType(nil)
	switch t.Kind() {
	case BoolKind:
		return Bool(dec.readBytes(1)[0] == 1)
	case Int64Kind:
		return Int64(dec.readUint64())
	case Uint64Kind:
		return Uint64(dec.readUint64())
	case Float64Kind:
		return Float64(math.Float64frombits(dec.readUint64()))
	case StringKind:
		return NewString(dec.readString())
	case TypeKind:
		return dec.readType(nil)
	case RefKind:
		digest := ref.Sha1Digest{}
		copy(digest[:], dec.readBytes(len(digest)))
		return Ref{ref.New(digest), t, &ref.Ref{}}
	case SetKind:
		count := dec.readUint32()
		values := make([]Value, count)
		for i := range values {
			values[i] = dec.readValue()
		}
		return newTypedSet(t, buildSetData(nil, values))
	case MapKind:
		count := dec.readUint32()
		kv := make([]Value, 2*count)
		for i := range kv {
			kv[i] = dec.readValue()
		}
		return newTypedMap(t, buildMapData(nil, kv))
	case StructKind:
		desc := t.Desc.(StructDesc)
		data := make(structData, len(desc.Fields))
		for _, f := range desc.Fields {
			data[f.Name] = dec.readValue()
		}
		return structFromData(t, data)
	}
	d.Chk.Fail("Unknown value kind in decode")
	return nil
}

func (dec valueDecoder) readType(parents []*Type) *Type {
	k := dec.readKind()
	if IsPrimitiveKind(k) {
		return MakePrimitiveType(k)
	}
	switch k {
	case parentKind:
		depth := int(dec.readBytes(1)[0])
		d.Chk.True(depth < len(parents), "Type back-reference out of range")
		return parents[len(parents)-1-depth]
	case RefKind, SetKind:
		return &Type{Desc: CompoundDesc{k, []*Type{dec.readType(parents)}}, ref: &ref.Ref{}}
	case MapKind:
		keyType := dec.readType(parents)
		valType := dec.readType(parents)
		return &Type{Desc: CompoundDesc{k, []*Type{keyType, valType}}, ref: &ref.Ref{}}
	case StructKind:
		t := &Type{ref: &ref.Ref{}}
		name := dec.readString()
		count := int(dec.readUint16())
		fields := make([]Field, count)
		parents = append(parents, t)
		for i := range fields {
			fields[i].Name = dec.readString()
			fields[i].T = dec.readType(parents)
		}
		t.Desc = StructDesc{name, fields}
		return t
	}
	d.Chk.Fail("Unknown type kind in decode")
	return nil
}

func (dec valueDecoder) readKind() NomsKind {
	return NomsKind(dec.readBytes(1)[0])
}

func (dec valueDecoder) readBytes(n int) []byte {
	b := make([]byte, n)
	_, err := io.ReadFull(dec.r, b)
	d.Chk.NoError(err)
	return b
}

func (dec valueDecoder) readUint16() (i uint16) {
	d.Chk.NoError(binary.Read(dec.r, binary.BigEndian, &i))
	return
}

func (dec valueDecoder) readUint32() (i uint32) {
	d.Chk.NoError(binary.Read(dec.r, binary.BigEndian, &i))
	return
}

func (dec valueDecoder) readUint64() (i uint64) {
	d.Chk.NoError(binary.Read(dec.r, binary.BigEndian, &i))
	return
}

func (dec valueDecoder) readString() string {
	n := dec.readUint32()
	return string(dec.readBytes(int(n)))
}
