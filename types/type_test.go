package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimitiveTypesAreMemoized(t *testing.T) {
	assert := assert.New(t)

	assert.True(MakePrimitiveType(StringKind) == StringType)
	assert.True(MakePrimitiveType(BoolKind) == BoolType)
	assert.True(MakePrimitiveType(ValueKind) == ValueType)
}

func TestTypeEquality(t *testing.T) {
	assert := assert.New(t)

	s1 := MakeSetType(StringType)
	s2 := MakeSetType(StringType)
	assert.True(s1.Equals(s2))
	assert.NotEqual(s1.Ref(), MakeSetType(BoolType).Ref())

	m1 := MakeMapType(StringType, Int64Type)
	m2 := MakeMapType(StringType, Int64Type)
	assert.True(m1.Equals(m2))
	assert.False(m1.Equals(MakeMapType(Int64Type, StringType)))
}

func TestRecursiveStructType(t *testing.T) {
	assert := assert.New(t)

	mkCommitLike := func() *Type {
		t := MakeStructType("Commit", []Field{
			{Name: "value", T: ValueType},
			{Name: "parents", T: nil},
		})
		t.Desc.(StructDesc).Fields[1].T = MakeSetType(MakeRefType(t))
		return t
	}

	t1 := mkCommitLike()
	t2 := mkCommitLike()

	// Structurally identical recursive types hash identically.
	assert.Equal(t1.Ref(), t2.Ref())
	assert.True(t1.Equals(t2))
	assert.Equal("Commit", t1.Name())
}

func TestTypeIsValue(t *testing.T) {
	assert := assert.New(t)

	st := MakeSetType(StringType)
	assert.True(st.Type().Equals(TypeType))

	vs := NewTestValueStore()
	r := vs.WriteValue(st)
	st2 := vs.ReadValue(r.TargetRef())
	assert.True(st.Equals(st2))
}
