package arena

import "reflect"

// isPlainData reports whether T contains only bits — no embedded
// references, interfaces or function values — and is therefore safe to
// place in raw arena memory and bitwise-copy.
func isPlainData[T any]() bool {
	var zero T
	return plainDataType(reflect.TypeOf(zero))
}

func plainDataType(t reflect.Type) bool {
	if t == nil {
		// An interface{}/any zero value has a nil reflect.Type; treat as
		// not plain data since we can't size it without a concrete type.
		return false
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return plainDataType(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !plainDataType(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointer, Slice, Map, Chan, Func, Interface, String, UnsafePointer:
		// all of these embed a reference the GC must track or that cannot
		// be bitwise-copied meaningfully inside raw arena memory.
		return false
	}
}
