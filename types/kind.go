package types

// NomsKind allows a TypeDesc to indicate what kind of type is described.
type NomsKind uint8

const (
	BoolKind NomsKind = iota
	Int64Kind
	Uint64Kind
	Float64Kind
	StringKind
	ValueKind
	TypeKind
	RefKind
	SetKind
	MapKind
	StructKind

	// parentKind is a codec-internal marker: a back-reference to an
	// enclosing struct type, used to encode recursive types.
	parentKind
)

var kindNames = map[NomsKind]string{
	BoolKind:    "Bool",
	Int64Kind:   "Int64",
	Uint64Kind:  "Uint64",
	Float64Kind: "Float64",
	StringKind:  "String",
	ValueKind:   "Value",
	TypeKind:    "Type",
	RefKind:     "Ref",
	SetKind:     "Set",
	MapKind:     "Map",
	StructKind:  "Struct",
}

func (k NomsKind) String() string {
	return kindNames[k]
}

// IsPrimitiveKind returns true if k represents a leaf kind: one with no
// element types and no fields.
func IsPrimitiveKind(k NomsKind) bool {
	switch k {
	case BoolKind, Int64Kind, Uint64Kind, Float64Kind, StringKind, ValueKind, TypeKind:
		return true
	default:
		return false
	}
}
