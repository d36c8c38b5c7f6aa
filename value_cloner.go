package collectioncache

import (
	"fmt"

	"github.com/goccy/go-reflect"
)

// ValueCloner is an interface for cloning values.
// It is used to copy entities whenever they cross the cache boundary,
// so that callers never share mutable state with the cache.
// The CloneValue method should return a deep copy of the input value.
type ValueCloner[V ValueConstraint] interface {
	CloneValue(V) V
}

// ValueClonerFunc is a function type that implements the ValueCloner interface.
type ValueClonerFunc[V ValueConstraint] func(v V) V

// CloneValue calls the function.
func (f ValueClonerFunc[V]) CloneValue(v V) V {
	return f(v)
}

// NopValueCloner is a value cloner that does not clone values.
// It is used when values do not need to be cloned. (e.g. when the values are primitive types or immutable usage)
type NopValueCloner[V ValueConstraint] struct{}

// CloneValue returns the input value.
func (NopValueCloner[V]) CloneValue(v V) V {
	return v
}

// DefaultValueCloner returns a default cloner for the given value type.
// Types with a Clone or DeepCopy method are cloned through it, and primitive types are not cloned at all.
// It panics for any other type, pass an explicit cloner with WithValueCloner in that case.
func DefaultValueCloner[V ValueConstraint]() ValueCloner[V] {
	var zero V
	return defaultValueClonerAny[V](zero)
}

func defaultValueClonerAny[V ValueConstraint](v any) ValueCloner[V] {
	type cloner interface {
		Clone() V
	}
	type deepCopier interface {
		DeepCopy() V
	}

	switch v.(type) {
	case cloner:
		return ValueClonerFunc[V](func(v V) V {
			var a any = v
			return a.(cloner).Clone()
		})

	case deepCopier:
		return ValueClonerFunc[V](func(v V) V {
			var a any = v
			return a.(deepCopier).DeepCopy()
		})

	default:
		typ := reflect.TypeOf(v)
		if typ == nil {
			panic("interface value type cannot be cloned by default")
		}
		return defaultValueClonerKind[V](typ)
	}
}

func defaultValueClonerKind[V ValueConstraint](typ reflect.Type) ValueCloner[V] {
	switch typ.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return NopValueCloner[V]{}
	default:
		panic(fmt.Sprintf("value type %s does not have Clone or DeepCopy method", typ.String()))
	}
}

// cloneMap copies m and every value in it.
func cloneMap[K KeyConstraint, V ValueConstraint](cloner ValueCloner[V], m map[K]V) map[K]V {
	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = cloner.CloneValue(v)
	}
	return c
}
