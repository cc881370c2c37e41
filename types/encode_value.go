package types

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/iammosespaulr/noms/chunks"
	"github.com/iammosespaulr/noms/d"
)

/*
  Canonical value encoding. Every value is self-describing:

    Value  = Type Payload
    Type   = kind byte, then per kind:
               Ref/Set: elem Type
               Map:     key Type, value Type
               Struct:  name, field count (u16), (field name, field Type)*
               parent:  depth byte, a back-reference to the enclosing struct
                        type `depth` levels up (recursive types)
    Payload per kind:
               Bool:    1 byte
               Int64/Uint64: 8 bytes big-endian
               Float64: IEEE 754 bits, big-endian
               String:  u32 length + bytes
               Type:    Type
               Ref:     20-byte digest
               Set:     u32 count + count Values, in hash order
               Map:     u32 count + count (key Value, value Value), in key
                        hash order
               Struct:  one Value per field, in field order

  Containers iterate in hash order and strings carry explicit lengths, so a
  value has exactly one encoding and its chunk hash is its content address.
*/

// EncodeValue serializes v into a chunk. The chunk's ref is v's content
// address.
func EncodeValue(v Value) chunks.Chunk {
	d.Chk.NotNil(v)
	w := chunks.NewChunkWriter()
	enc := valueEncoder{w}
	enc.writeValue(v)
	return w.Chunk()
}

type valueEncoder struct {
	w io.Writer
}

func (enc valueEncoder) writeValue(v Value) {
	enc.writeType(v.Type(), nil)
	switch v := v.(type) {
	case Bool:
		b := byte(0)
		if v {
			b = 1
		}
		enc.writeBytes([]byte{b})
	case Int64:
		enc.writeUint64(uint64(v))
	case Uint64:
		enc.writeUint64(uint64(v))
	case Float64:
		enc.writeUint64(math.Float64bits(float64(v)))
	case String:
		enc.writeString(v.String())
	case *Type:
		enc.writeType(v, nil)
	case Ref:
		digest := v.TargetRef().Digest()
		enc.writeBytes(digest[:])
	case Set:
		enc.writeUint32(uint32(len(v.data)))
		for _, e := range v.data {
			enc.writeValue(e)
		}
	case Map:
		enc.writeUint32(uint32(len(v.data)))
		for _, entry := range v.data {
			enc.writeValue(entry.key)
			enc.writeValue(entry.value)
		}
	case Struct:
		for _, f := range v.desc().Fields {
			enc.writeValue(v.data[f.Name])
		}
	default:
		d.Chk.Fail(fmt.Sprintf("Unknown value kind %T", v))
	}
}

func (enc valueEncoder) writeType(t *Type, parents []*Type) {
	switch desc := t.Desc.(type) {
	case PrimitiveDesc:
		enc.writeKind(desc.Kind())
	case CompoundDesc:
		enc.writeKind(desc.Kind())
		for _, et := range desc.ElemTypes {
			enc.writeType(et, parents)
		}
	case StructDesc:
		for i := len(parents) - 1; i >= 0; i-- {
			if parents[i] == t {
				enc.writeKind(parentKind)
				enc.writeBytes([]byte{byte(len(parents) - 1 - i)})
				return
			}
		}
		enc.writeKind(StructKind)
		enc.writeString(desc.Name)
		enc.writeUint16(uint16(len(desc.Fields)))
		parents = append(parents, t)
		for _, f := range desc.Fields {
			enc.writeString(f.Name)
			enc.writeType(f.T, parents)
		}
	default:
		d.Chk.Fail(fmt.Sprintf("Unknown type desc %T", desc))
	}
}

func (enc valueEncoder) writeKind(k NomsKind) {
	enc.writeBytes([]byte{byte(k)})
}

func (enc valueEncoder) writeBytes(b []byte) {
	n, err := enc.w.Write(b)
	d.Chk.NoError(err)
	d.Chk.Equal(len(b), n)
}

func (enc valueEncoder) writeUint16(i uint16) {
	d.Chk.NoError(binary.Write(enc.w, binary.BigEndian, i))
}

func (enc valueEncoder) writeUint32(i uint32) {
	d.Chk.NoError(binary.Write(enc.w, binary.BigEndian, i))
}

func (enc valueEncoder) writeUint64(i uint64) {
	d.Chk.NoError(binary.Write(enc.w, binary.BigEndian, i))
}

func (enc valueEncoder) writeString(s string) {
	enc.writeUint32(uint32(len(s)))
	enc.writeBytes([]byte(s))
}
