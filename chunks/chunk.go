package chunks

import (
	"bytes"
	"hash"
	"io"

	"github.com/iammosespaulr/noms/d"
	"github.com/iammosespaulr/noms/ref"
)

// Chunk is an immutable byte buffer paired with its content hash.
type Chunk struct {
	r    ref.Ref
	data []byte
}

var EmptyChunk = NewChunk([]byte{})

func (c Chunk) Ref() ref.Ref {
	return c.r
}

func (c Chunk) Data() []byte {
	return c.data
}

func (c Chunk) IsEmpty() bool {
	return len(c.data) == 0
}

// NewChunk creates a new Chunk backed by data. This means that the returned Chunk must not be modified after this call.
func NewChunk(data []byte) Chunk {
	r := ref.FromData(data)
	return Chunk{r, data}
}

// NewChunkWithRef creates a new chunk with a known ref. The ref is trusted.
func NewChunkWithRef(r ref.Ref, data []byte) Chunk {
	return Chunk{r, data}
}

// ChunkWriter is an io.WriteCloser that buffers and hashes what is written, additionally providing the ability to grab the resulting Chunk for all data written through the interface. Calling Chunk() or Close() on an instance disallows further writing.
type ChunkWriter struct {
	buffer *bytes.Buffer
	writer io.Writer
	hash   hash.Hash
	c      Chunk
}

func NewChunkWriter() *ChunkWriter {
	b := &bytes.Buffer{}
	h := ref.NewHash()
	return &ChunkWriter{
		buffer: b,
		writer: io.MultiWriter(b, h),
		hash:   h,
	}
}

func (w *ChunkWriter) Write(data []byte) (int, error) {
	d.Chk.NotNil(w.buffer, "Write() cannot be called after Chunk() or Close().")
	size, err := w.writer.Write(data)
	d.Chk.NoError(err)
	return size, nil
}

// Chunk() closes the writer and returns the resulting Chunk.
func (w *ChunkWriter) Chunk() Chunk {
	d.Chk.NoError(w.Close())
	return w.c
}

// Close() keeps the Chunk() behind this instance available, but disallows further writing.
func (w *ChunkWriter) Close() error {
	if w.buffer == nil {
		return nil
	}

	w.c = NewChunkWithRef(ref.FromHash(w.hash), w.buffer.Bytes())
	w.buffer = nil
	return nil
}
