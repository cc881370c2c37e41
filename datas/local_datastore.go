package datas

import (
	"github.com/iammosespaulr/noms/types"
)

// LocalDataStore is the in-process DataStore implementation. Derived
// instances returned from Commit share the value cache (entries are keyed by
// content hash and immutable, so they stay valid across snapshots) but
// capture a fresh root.
type LocalDataStore struct {
	dataStoreCommon
}

func newLocalDataStore(cvs cachingValueStore) *LocalDataStore {
	return &LocalDataStore{newDataStoreCommon(cvs)}
}

func (lds *LocalDataStore) Commit(datasetID string, commit types.Struct) (DataStore, error) {
	err := lds.doCommit(datasetID, commit)
	return newLocalDataStore(lds.cachingValueStore), err
}

func (lds *LocalDataStore) Delete(datasetID string) (DataStore, error) {
	err := lds.doDelete(datasetID)
	return newLocalDataStore(lds.cachingValueStore), err
}
