package chunks

import (
	"bytes"
	"crypto/sha1"
	"encoding/binary"
	"io"

	"github.com/iammosespaulr/noms/d"
	"github.com/iammosespaulr/noms/ref"
)

/*
  Chunk Serialization:
    Chunk 0
    Chunk 1
     ..
    Chunk N

  Chunk:
    Ref   // 20-byte sha1 hash
    Len   // 4-byte int
    Data  // len(Data) == Len
*/

// Serialize writes c to writer in the framing above.
func Serialize(c Chunk, writer io.Writer) {
	d.Chk.NotNil(c.Data())

	digest := c.Ref().Digest()
	n, err := io.Copy(writer, bytes.NewReader(digest[:]))
	d.Chk.NoError(err)
	d.Chk.Equal(int64(sha1.Size), n)

	// Because of chunking at higher levels, no chunk should ever be more than 4GB
	chunkSize := uint32(len(c.Data()))
	err = binary.Write(writer, binary.BigEndian, chunkSize)
	d.Chk.NoError(err)

	n, err = io.Copy(writer, bytes.NewReader(c.Data()))
	d.Chk.NoError(err)
	d.Chk.Equal(uint32(n), chunkSize)
}

// Deserialize reads off of reader until EOF, sending chunks to cs.
func Deserialize(reader io.Reader, cs ChunkSink) {
	for {
		c, success := deserializeChunk(reader)
		if !success {
			break
		}
		cs.Put(c)
	}
}

// DeserializeToChan reads off of reader until EOF, sending chunks to chunkChan in the order they are read.
func DeserializeToChan(reader io.Reader, chunkChan chan<- Chunk) {
	for {
		c, success := deserializeChunk(reader)
		if !success {
			break
		}
		chunkChan <- c
	}
	close(chunkChan)
}

func deserializeChunk(reader io.Reader) (Chunk, bool) {
	digest := ref.Sha1Digest{}
	n, err := io.ReadFull(reader, digest[:])
	if err == io.EOF {
		return EmptyChunk, false
	}
	d.Chk.NoError(err)
	d.Chk.Equal(sha1.Size, n)
	r := ref.New(digest)

	chunkSize := uint32(0)
	err = binary.Read(reader, binary.BigEndian, &chunkSize)
	d.Chk.NoError(err)

	w := NewChunkWriter()
	n2, err := io.CopyN(w, reader, int64(chunkSize))
	d.Chk.NoError(err)
	d.Chk.Equal(int64(chunkSize), n2)
	c := w.Chunk()
	d.Chk.Equal(r, c.Ref(), "Serialized chunk data did not match its ref")
	return c, true
}
