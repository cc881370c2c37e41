package chunks

import (
	"testing"

	"github.com/iammosespaulr/noms/ref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// ChunkStoreTestSuite exercises the ChunkStore contract against any
// implementation.
type ChunkStoreTestSuite struct {
	suite.Suite
	Store ChunkStore
}

func (suite *ChunkStoreTestSuite) TestChunkStorePut() {
	input := "abc"
	c := NewChunk([]byte(input))
	suite.Store.Put(c)

	// Reading it via the API should work.
	assertInputInStore(input, c.Ref(), suite.Store, suite.Assert())

	// Re-putting the same chunk is a no-op.
	suite.Store.Put(c)
	assertInputInStore(input, c.Ref(), suite.Store, suite.Assert())
}

func (suite *ChunkStoreTestSuite) TestChunkStoreGetMissing() {
	c := suite.Store.Get(ref.FromData([]byte("nonexistent")))
	suite.True(c.IsEmpty())
	suite.False(suite.Store.Has(ref.FromData([]byte("nonexistent"))))
}

func (suite *ChunkStoreTestSuite) TestChunkStoreRoot() {
	oldRoot := suite.Store.Root()
	suite.True(oldRoot.IsEmpty())

	bogusRoot := ref.MustParse("sha1-81c870618113ba29b6f2b396ea3a69c6f1d626c5")
	newRoot := ref.MustParse("sha1-81c870618113ba29b6f2b396ea3a69c6f1d626c6")

	// Try to update root with bogus oldRoot argument
	result := suite.Store.UpdateRoot(newRoot, bogusRoot)
	suite.False(result)
	suite.True(suite.Store.Root().IsEmpty())

	// Now do a valid root update
	result = suite.Store.UpdateRoot(newRoot, oldRoot)
	suite.True(result)
	suite.Equal(newRoot, suite.Store.Root())

	// A stale expected value must lose.
	result = suite.Store.UpdateRoot(bogusRoot, oldRoot)
	suite.False(result)
	suite.Equal(newRoot, suite.Store.Root())
}

func assertInputInStore(input string, r ref.Ref, s ChunkSource, assert *assert.Assertions) {
	c := s.Get(r)
	assert.False(c.IsEmpty(), "Shouldn't get empty chunk for %s", r)
	assert.Equal(input, string(c.Data()))
	assert.True(s.Has(r))
}

type MemoryStoreTestSuite struct {
	ChunkStoreTestSuite
}

func (suite *MemoryStoreTestSuite) SetupTest() {
	suite.Store = NewMemoryStore()
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, &MemoryStoreTestSuite{})
}

func TestMemoryStoreFactory(t *testing.T) {
	assert := assert.New(t)
	f := NewMemoryStoreFactory()

	ns1 := f.CreateStore("ns1")
	ns2 := f.CreateStore("ns2")
	c := NewChunk([]byte("abc"))
	ns1.Put(c)
	assert.True(ns1.Has(c.Ref()))
	assert.False(ns2.Has(c.Ref()))

	// Same namespace, same store.
	assert.True(f.CreateStore("ns1").Has(c.Ref()))

	f.Shutter()
	assert.Nil(f.CreateStore("ns1"))
}
