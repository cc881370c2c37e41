package datas

import "github.com/iammosespaulr/noms/chunks"

// Factory allows the creation of namespaced DataStore instances. The details
// of how namespaces are separated is left up to the particular implementation
// of Factory and DataStore.
type Factory interface {
	Create(ns string) (DataStore, bool)

	// Shutter shuts down the factory. Subsequent calls to Create() will fail.
	Shutter()
}

type localFactory struct {
	cf        chunks.Factory
	cacheSize uint64
}

func NewFactory(cf chunks.Factory) Factory {
	return &localFactory{cf, 0}
}

func NewFactoryWithCacheSize(cf chunks.Factory, cacheSize uint64) Factory {
	return &localFactory{cf, cacheSize}
}

func (lf *localFactory) Create(ns string) (DataStore, bool) {
	if cs := lf.cf.CreateStore(ns); cs != nil {
		return NewDataStoreWithCacheSize(cs, lf.cacheSize), true
	}
	return nil, false
}

func (lf *localFactory) Shutter() {
	lf.cf.Shutter()
}
