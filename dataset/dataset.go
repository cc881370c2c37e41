package dataset

import (
	"flag"

	"github.com/iammosespaulr/noms/chunks"
	"github.com/iammosespaulr/noms/d"
	"github.com/iammosespaulr/noms/datas"
	"github.com/iammosespaulr/noms/ref"
	"github.com/iammosespaulr/noms/types"
)

// Dataset binds a DataStore to one named dataset, so callers can work with a
// single head without threading the id everywhere.
type Dataset struct {
	store datas.DataStore
	id    string
}

func NewDataset(store datas.DataStore, datasetID string) Dataset {
	return Dataset{store, datasetID}
}

func (ds *Dataset) Store() datas.DataStore {
	return ds.store
}

func (ds *Dataset) ID() string {
	return ds.id
}

func (ds *Dataset) MaybeHead() (types.Struct, bool) {
	return ds.store.MaybeHead(ds.id)
}

func (ds *Dataset) Head() types.Struct {
	c, ok := ds.MaybeHead()
	d.Chk.True(ok, "Dataset %s does not exist", ds.id)
	return c
}

// HeadValue returns the value of the current head commit, if the dataset
// exists.
func (ds *Dataset) HeadValue() (types.Value, bool) {
	if c, ok := ds.MaybeHead(); ok {
		return c.Get(datas.ValueField), true
	}
	return nil, false
}

// Commit updates the commit that the dataset points at, with the current head
// (if any) as the sole parent. If the update cannot be performed, e.g.
// because of a conflict, error will be non-nil. The newest snapshot of the
// dataset is always returned, so the caller can merge the changes and try
// again.
func (ds *Dataset) Commit(v types.Value) (Dataset, error) {
	var parents []ref.Ref
	if head, ok := ds.MaybeHead(); ok {
		parents = []ref.Ref{head.Ref()}
	}
	return ds.CommitWithParents(v, parents)
}

// CommitWithParents is Commit with an explicit parent list; the new commit
// must still descend from the current head.
func (ds *Dataset) CommitWithParents(v types.Value, parents []ref.Ref) (Dataset, error) {
	store, err := ds.store.Commit(ds.id, datas.NewCommit(v, parents))
	return Dataset{store, ds.id}, err
}

// Delete removes the dataset from the store's dataset map.
func (ds *Dataset) Delete() (Dataset, error) {
	store, err := ds.store.Delete(ds.id)
	return Dataset{store, ds.id}, err
}

type datasetFlags struct {
	chunks.Flags
	datasetID *string
}

func NewFlags() datasetFlags {
	return NewFlagsWithPrefix("")
}

func NewFlagsWithPrefix(prefix string) datasetFlags {
	return datasetFlags{
		chunks.NewFlagsWithPrefix(prefix),
		flag.String(prefix+"ds", "", "dataset id to store data for"),
	}
}

func (f datasetFlags) CreateDataset() *Dataset {
	if *f.datasetID == "" {
		return nil
	}
	cs := f.Flags.CreateStore()
	if cs == nil {
		return nil
	}

	ds := NewDataset(datas.NewDataStore(cs), *f.datasetID)
	return &ds
}
