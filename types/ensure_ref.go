package types

import "github.com/iammosespaulr/noms/ref"

// EnsureRef returns the hash of v's canonical encoding, memoizing it in r.
// Values share this to make repeated Ref() calls cheap.
func EnsureRef(r *ref.Ref, v Value) ref.Ref {
	if r.IsEmpty() {
		*r = getRef(v)
	}
	return *r
}

func getRef(v Value) ref.Ref {
	return EncodeValue(v).Ref()
}
