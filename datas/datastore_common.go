package datas

import (
	"errors"
	"sync"

	"github.com/iammosespaulr/noms/d"
	"github.com/iammosespaulr/noms/ref"
	"github.com/iammosespaulr/noms/types"
)

var (
	ErrOptimisticLockFailed = errors.New("Optimistic lock failed on datastore Root update")
	ErrMergeNeeded          = errors.New("Merge needed: dataset head is not ancestor of commit")
)

type dataStoreCommon struct {
	cachingValueStore
	rootRef ref.Ref

	datasetsOnce *sync.Once
	datasets     types.Map
}

func newDataStoreCommon(cvs cachingValueStore) dataStoreCommon {
	return dataStoreCommon{cachingValueStore: cvs, rootRef: cvs.Root(), datasetsOnce: &sync.Once{}}
}

// Datasets returns the dataset map captured at construction. It is
// materialized lazily, once; concurrent first callers share the single read.
func (ds *dataStoreCommon) Datasets() types.Map {
	ds.datasetsOnce.Do(func() {
		if ds.rootRef.IsEmpty() {
			ds.datasets = emptyDatasets()
		} else {
			ds.datasets = ds.datasetsFromRef(ds.rootRef)
		}
	})
	return ds.datasets
}

func (ds *dataStoreCommon) datasetsFromRef(datasetsRef ref.Ref) types.Map {
	return ds.ReadValue(datasetsRef).(types.Map)
}

func (ds *dataStoreCommon) MaybeHead(datasetID string) (types.Struct, bool) {
	if r, ok := datasetHeadRef(ds.Datasets(), datasetID); ok {
		return r.TargetValue(ds).(types.Struct), true
	}
	return types.Struct{}, false
}

func (ds *dataStoreCommon) Head(datasetID string) types.Struct {
	c, ok := ds.MaybeHead(datasetID)
	d.Chk.True(ok, "DataStore has no Head for dataset %s.", datasetID)
	return c
}

func (ds *dataStoreCommon) Close() error {
	return ds.cs.Close()
}

// doCommit manages concurrent access to the single logical piece of mutable
// state: the current Root. doCommit is optimistic in that it validates and
// updates against the root captured when this DataStore was constructed. The
// UpdateRoot call in tryUpdateRoot fails, and ErrOptimisticLockFailed is
// returned, if another writer has advanced the root since then; the entire algorithm must be
// tried again on a fresh DataStore. This method will also fail and return
// ErrMergeNeeded if commit is not a descendant of the current dataset head.
func (ds *dataStoreCommon) doCommit(datasetID string, commit types.Struct) error {
	d.Exp.True(commit.Type().Equals(getDatasTypes().Commit), "Commit() requires a Commit struct")

	currentRootRef, currentDatasets := ds.rootRef, ds.Datasets()

	// TODO: This Commit will be orphaned if the tryUpdateRoot() below fails
	commitRef := ds.WriteValue(commit)

	// First commit in store is always fast-forward.
	if !currentRootRef.IsEmpty() {
		// First commit in dataset is always fast-forward.
		if currentHeadRef, hasHead := datasetHeadRef(currentDatasets, datasetID); hasHead {
			// Allow only fast-forward commits.
			if commitRef.Equals(currentHeadRef) {
				return nil
			}
			if !descendsFrom(commit, currentHeadRef, ds) {
				return ErrMergeNeeded
			}
		}
	}
	currentDatasets = currentDatasets.Set(types.NewString(datasetID), commitRef)
	return ds.tryUpdateRoot(currentDatasets, currentRootRef)
}

// doDelete removes a dataset entry under the same optimistic discipline as
// doCommit; there is no ancestry to validate.
func (ds *dataStoreCommon) doDelete(datasetID string) error {
	currentDatasets := ds.Datasets().Remove(types.NewString(datasetID))
	return ds.tryUpdateRoot(currentDatasets, ds.rootRef)
}

func (ds *dataStoreCommon) tryUpdateRoot(currentDatasets types.Map, currentRootRef ref.Ref) error {
	// TODO: This dataset map will be orphaned if the UpdateRoot below fails
	newRootRef := ds.WriteValue(currentDatasets).TargetRef()
	// If the root has been updated by another writer in the short window
	// since we read it, this call will fail and the commit is surfaced as a
	// lock failure; the caller retries against a fresh DataStore.
	if !ds.UpdateRoot(newRootRef, currentRootRef) {
		return ErrOptimisticLockFailed
	}
	return nil
}

// descendsFrom reports whether currentHeadRef is in the transitive closure of
// commit's parents. BFS a generation at a time, because the common case is
// that the ancestor is only a step or two away.
func descendsFrom(commit types.Struct, currentHeadRef types.Ref, vr types.ValueReader) bool {
	ancestors := commit.Get(ParentsField).(types.Set)
	for !ancestors.Has(currentHeadRef) {
		if ancestors.Empty() {
			return false
		}
		ancestors = getAncestors(ancestors, vr)
	}
	return true
}

// getAncestors returns the union of the parent sets of every commit referred
// to in commits.
func getAncestors(commits types.Set, vr types.ValueReader) types.Set {
	ancestors := NewSetOfRefOfCommit()
	commits.IterAll(func(v types.Value) {
		c := v.(types.Ref).TargetValue(vr).(types.Struct)
		ancestors = ancestors.Union(c.Get(ParentsField).(types.Set))
	})
	return ancestors
}
