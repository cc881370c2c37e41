package chunks

import (
	"testing"

	"github.com/iammosespaulr/noms/ref"
	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	assert := assert.New(t)

	c := NewChunk([]byte("abc"))
	assert.Equal(ref.FromData([]byte("abc")), c.Ref())
	assert.False(c.IsEmpty())

	assert.True(EmptyChunk.IsEmpty())
	assert.True(NewChunk([]byte{}).IsEmpty())
}

func TestChunkWriter(t *testing.T) {
	assert := assert.New(t)

	w := NewChunkWriter()
	n, err := w.Write([]byte("abc"))
	assert.NoError(err)
	assert.Equal(3, n)

	c := w.Chunk()
	assert.Equal(NewChunk([]byte("abc")), c)

	// Close after Chunk is allowed and idempotent.
	assert.NoError(w.Close())
}
