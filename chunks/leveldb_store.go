package chunks

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/snappy"
	"github.com/iammosespaulr/noms/d"
	"github.com/iammosespaulr/noms/ref"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/syndtr/goleveldb/leveldb"
	ldberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

var (
	rootKey     = []byte("/root")
	chunkPrefix = []byte("/chunk/")
)

func toChunkKey(r ref.Ref) []byte {
	digest := r.Digest()
	return append(chunkPrefix, digest[:]...)
}

// LevelDBStore is a ChunkStore backed by a local LevelDB. Chunk records are
// snappy-compressed; LevelDB's own block compression is disabled so data isn't
// compressed twice.
type LevelDBStore struct {
	db  *leveldb.DB
	mu  sync.Mutex
	log *logrus.Entry
}

func NewLevelDBStore(dir string) *LevelDBStore {
	l, err := OpenLevelDBStore(dir)
	d.Chk.NoError(err)
	return l
}

func OpenLevelDBStore(dir string) (*LevelDBStore, error) {
	if dir == "" {
		return nil, errors.New("leveldb store requires a directory")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrap(err, "creating leveldb directory")
	}
	db, err := leveldb.OpenFile(dir, &opt.Options{
		Compression: opt.NoCompression,
		Filter:      filter.NewBloomFilter(10), // 10 bits/key
		WriteBuffer: 1 << 24,                   // 16MiB
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening leveldb at %s", dir)
	}

	log := logrus.WithField("store", "ldb").WithField("dir", dir)
	log.Debug("opened leveldb chunk store")
	return &LevelDBStore{db: db, log: log}, nil
}

func (l *LevelDBStore) Root() ref.Ref {
	val, err := l.db.Get(rootKey, nil)
	if err == ldberrors.ErrNotFound {
		return ref.Ref{}
	}
	d.Chk.NoError(err)

	return ref.MustParse(string(val))
}

func (l *LevelDBStore) UpdateRoot(current, last ref.Ref) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if last != l.Root() {
		return false
	}

	// Sync: true write option should fsync memtable data to disk
	err := l.db.Put(rootKey, []byte(current.String()), &opt.WriteOptions{Sync: true})
	d.Chk.NoError(err)
	l.log.WithField("root", current.String()).Debug("advanced root")
	return true
}

func (l *LevelDBStore) Get(r ref.Ref) Chunk {
	compressed, err := l.db.Get(toChunkKey(r), nil)
	if err == ldberrors.ErrNotFound {
		return EmptyChunk
	}
	d.Chk.NoError(err)

	data, err := snappy.Decode(nil, compressed)
	d.Chk.NoError(err)
	return NewChunkWithRef(r, data)
}

func (l *LevelDBStore) Has(r ref.Ref) bool {
	exists, err := l.db.Has(toChunkKey(r), &opt.ReadOptions{DontFillCache: true})
	d.Chk.NoError(err)
	return exists
}

func (l *LevelDBStore) Put(c Chunk) {
	key := toChunkKey(c.Ref())

	// This isn't really a "read", so don't signal the cache to treat it as one.
	exists, err := l.db.Has(key, &opt.ReadOptions{DontFillCache: true})
	d.Chk.NoError(err)
	if exists {
		return
	}

	err = l.db.Put(key, snappy.Encode(nil, c.Data()), nil)
	d.Chk.NoError(err)
}

func (l *LevelDBStore) Close() error {
	l.log.Debug("closing leveldb chunk store")
	return l.db.Close()
}

// LevelDBStoreFactory creates stores in per-namespace subdirectories of dir.
type LevelDBStoreFactory struct {
	dir string
}

func NewLevelDBStoreFactory(dir string) *LevelDBStoreFactory {
	return &LevelDBStoreFactory{dir}
}

func (f *LevelDBStoreFactory) CreateStore(ns string) ChunkStore {
	if f.dir == "" {
		return nil
	}
	return NewLevelDBStore(filepath.Join(f.dir, ns))
}

func (f *LevelDBStoreFactory) Shutter() {
	f.dir = ""
}
