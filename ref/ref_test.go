package ref

import (
	"sort"
	"testing"

	"github.com/iammosespaulr/noms/d"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	r := FromData([]byte("abc"))
	r2 := Parse(r.String())
	assert.Equal(r, r2)

	err := d.Try(func() {
		Parse("sha1")
	})
	assert.Error(err)
}

func TestMustParse(t *testing.T) {
	assert := assert.New(t)

	r := MustParse("sha1-a9993e364706816aba3e25717850c26c9cd0d89d")
	assert.Equal("sha1-a9993e364706816aba3e25717850c26c9cd0d89d", r.String())
	assert.Equal(r, FromData([]byte("abc")))
}

func TestIsEmpty(t *testing.T) {
	assert := assert.New(t)

	assert.True(Ref{}.IsEmpty())
	assert.False(FromData([]byte{}).IsEmpty())
	assert.False(FromData([]byte("x")).IsEmpty())
}

func TestEquals(t *testing.T) {
	assert := assert.New(t)

	r0 := FromData([]byte("abc"))
	r01 := FromData([]byte("abc"))
	r1 := FromData([]byte("def"))

	assert.Equal(r0, r01)
	assert.NotEqual(r0, r1)
}

func TestLess(t *testing.T) {
	assert := assert.New(t)

	r0 := FromData([]byte("abc"))
	r1 := FromData([]byte("def"))

	assert.False(Less(r0, r0))
	assert.Equal(Less(r0, r1), !Less(r1, r0))
}

func TestRefSlice(t *testing.T) {
	assert := assert.New(t)

	rs := RefSlice{FromData([]byte("c")), FromData([]byte("a")), FromData([]byte("b"))}
	sort.Sort(rs)
	for i := 0; i < len(rs)-1; i++ {
		assert.True(Less(rs[i], rs[i+1]))
	}
}
