package types

import "github.com/iammosespaulr/noms/ref"

type String struct {
	s   string
	ref *ref.Ref
}

func NewString(s string) String {
	return String{s, &ref.Ref{}}
}

func (s String) String() string {
	return s.s
}

func (s String) Equals(other Value) bool {
	if other, ok := other.(String); ok {
		return s.s == other.s
	}
	return false
}

func (s String) Ref() ref.Ref {
	return EnsureRef(s.ref, s)
}

func (s String) Chunks() []Ref {
	return nil
}

func (s String) Type() *Type {
	return StringType
}
