package types

import (
	"fmt"

	"github.com/iammosespaulr/noms/d"
)

// FromGo lifts a Go value into a Value. Only the unambiguous cases are
// auto-typed: strings, bools, and anything that already is a Value. Every
// other Go kind has more than one plausible Noms type, so callers must pick
// one via the explicit constructors (Int64, Uint64, Float64, ...).
func FromGo(v interface{}) Value {
	switch v := v.(type) {
	case Value:
		return v
	case string:
		return NewString(v)
	case bool:
		return Bool(v)
	}
	d.Exp.Fail(fmt.Sprintf("type parameter is required for %T", v))
	return nil
}
