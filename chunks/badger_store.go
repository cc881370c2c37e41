package chunks

import (
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/iammosespaulr/noms/d"
	"github.com/iammosespaulr/noms/ref"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// BadgerStore is a ChunkStore backed by a local Badger database. It shares
// the LevelDBStore keyspace layout: a single root key plus one record per
// chunk, keyed by digest.
type BadgerStore struct {
	db  *badger.DB
	mu  sync.Mutex
	log *logrus.Entry
}

func NewBadgerStore(dir string) *BadgerStore {
	b, err := OpenBadgerStore(dir)
	d.Chk.NoError(err)
	return b
}

func OpenBadgerStore(dir string) (*BadgerStore, error) {
	if dir == "" {
		return nil, errors.New("badger store requires a directory")
	}
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, errors.Wrapf(err, "opening badger at %s", dir)
	}

	log := logrus.WithField("store", "badger").WithField("dir", dir)
	log.Debug("opened badger chunk store")
	return &BadgerStore{db: db, log: log}, nil
}

func (b *BadgerStore) Root() (r ref.Ref) {
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(rootKey)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			r = ref.MustParse(string(val))
			return nil
		})
	})
	d.Chk.NoError(err)
	return
}

func (b *BadgerStore) UpdateRoot(current, last ref.Ref) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if last != b.Root() {
		return false
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(rootKey, []byte(current.String()))
	})
	d.Chk.NoError(err)
	d.Chk.NoError(b.db.Sync())
	b.log.WithField("root", current.String()).Debug("advanced root")
	return true
}

func (b *BadgerStore) Get(r ref.Ref) Chunk {
	c := EmptyChunk
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(toChunkKey(r))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data := make([]byte, len(val))
			copy(data, val)
			c = NewChunkWithRef(r, data)
			return nil
		})
	})
	d.Chk.NoError(err)
	return c
}

func (b *BadgerStore) Has(r ref.Ref) bool {
	has := false
	err := b.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(toChunkKey(r))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		has = true
		return nil
	})
	d.Chk.NoError(err)
	return has
}

func (b *BadgerStore) Put(c Chunk) {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(toChunkKey(c.Ref()), c.Data())
	})
	d.Chk.NoError(err)
}

func (b *BadgerStore) Close() error {
	b.log.Debug("closing badger chunk store")
	return b.db.Close()
}

// BadgerStoreFactory creates stores in per-namespace subdirectories of dir.
type BadgerStoreFactory struct {
	dir string
}

func NewBadgerStoreFactory(dir string) *BadgerStoreFactory {
	return &BadgerStoreFactory{dir}
}

func (f *BadgerStoreFactory) CreateStore(ns string) ChunkStore {
	if f.dir == "" {
		return nil
	}
	return NewBadgerStore(filepath.Join(f.dir, ns))
}

func (f *BadgerStoreFactory) Shutter() {
	f.dir = ""
}
