package chunks

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type LevelDBStoreTestSuite struct {
	ChunkStoreTestSuite
	dir string
}

func (suite *LevelDBStoreTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
	suite.Store = NewLevelDBStore(suite.dir)
}

func (suite *LevelDBStoreTestSuite) TearDownTest() {
	suite.NoError(suite.Store.Close())
}

func (suite *LevelDBStoreTestSuite) TestReopen() {
	input := "abc"
	c := NewChunk([]byte(input))
	suite.Store.Put(c)
	suite.True(suite.Store.UpdateRoot(c.Ref(), suite.Store.Root()))
	suite.NoError(suite.Store.Close())

	suite.Store = NewLevelDBStore(suite.dir)
	assertInputInStore(input, c.Ref(), suite.Store, suite.Assert())
	suite.Equal(c.Ref(), suite.Store.Root())
}

func TestLevelDBStoreTestSuite(t *testing.T) {
	suite.Run(t, &LevelDBStoreTestSuite{})
}

func TestOpenLevelDBStoreRequiresDir(t *testing.T) {
	_, err := OpenLevelDBStore("")
	if err == nil {
		t.Fatal("expected error for empty dir")
	}
}
