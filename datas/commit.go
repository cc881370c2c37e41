package datas

import (
	"sync"

	"github.com/iammosespaulr/noms/ref"
	"github.com/iammosespaulr/noms/types"
)

const (
	ParentsField = "parents"
	ValueField   = "value"
)

// datasTypes holds the process-wide type descriptors for the commit DAG:
//
//	struct Commit {
//	  value: Value
//	  parents: Set<Ref<Commit>>
//	}
//
// plus the derived Ref<Commit>, Set<Ref<Commit>> and the dataset map type
// Map<String, Ref<Commit>>. They are registered exactly once; the descriptors
// (and their hashes) are stable across the process.
type datasTypes struct {
	Commit                   *types.Type
	RefOfCommit              *types.Type
	SetOfRefOfCommit         *types.Type
	MapOfStringToRefOfCommit *types.Type
}

var (
	typesOnce       sync.Once
	registeredTypes datasTypes

	emptyDatasetsOnce sync.Once
	emptyDatasetsMap  types.Map
)

func getDatasTypes() datasTypes {
	typesOnce.Do(func() {
		commitType := types.MakeStructType("Commit", []types.Field{
			{Name: ValueField, T: types.ValueType},
			{Name: ParentsField, T: nil},
		})
		commitType.Desc.(types.StructDesc).Fields[1].T = types.MakeSetType(types.MakeRefType(commitType))

		registeredTypes = datasTypes{
			Commit:                   commitType,
			RefOfCommit:              types.MakeRefType(commitType),
			SetOfRefOfCommit:         types.MakeSetType(types.MakeRefType(commitType)),
			MapOfStringToRefOfCommit: types.MakeMapType(types.StringType, types.MakeRefType(commitType)),
		}
	})
	return registeredTypes
}

// NewCommit creates a Commit struct whose parents are lifted to
// Ref<Commit>s.
func NewCommit(value types.Value, parents []ref.Ref) types.Struct {
	t := getDatasTypes()
	refs := make([]types.Value, len(parents))
	for i, p := range parents {
		refs[i] = types.NewTypedRef(t.RefOfCommit, p)
	}
	return types.NewStruct(t.Commit, map[string]types.Value{
		ValueField:   value,
		ParentsField: types.NewTypedSet(t.SetOfRefOfCommit, refs...),
	})
}

func NewRefOfCommit(target ref.Ref) types.Ref {
	return types.NewTypedRef(getDatasTypes().RefOfCommit, target)
}

func NewSetOfRefOfCommit(refs ...types.Value) types.Set {
	return types.NewTypedSet(getDatasTypes().SetOfRefOfCommit, refs...)
}

func NewMapOfStringToRefOfCommit() types.Map {
	return types.NewTypedMap(getDatasTypes().MapOfStringToRefOfCommit)
}

// emptyDatasets returns the canonical empty dataset map. It is created once
// per process; every DataStore with an empty root shares it.
func emptyDatasets() types.Map {
	emptyDatasetsOnce.Do(func() {
		emptyDatasetsMap = NewMapOfStringToRefOfCommit()
	})
	return emptyDatasetsMap
}
