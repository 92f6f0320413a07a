package outcome

import (
	"fmt"
	"reflect"
	"sync/atomic"
	"time"
)

// Cloner lets a payload supply its own isolating copy instead of the
// reflection copier.
type Cloner[T any] interface {
	Clone() T
}

// maxCopyDepth bounds the copier's recursion; cyclic structures hit the
// bound and fall back to sharing.
const maxCopyDepth = 1000

var copyFallbackHook atomic.Pointer[func(typeName string)]

// OnCopyFallback registers fn to run whenever a payload copy falls back
// to sharing the caller's reference. Passing nil removes the hook.
func OnCopyFallback(fn func(typeName string)) {
	if fn == nil {
		copyFallbackHook.Store(nil)
		return
	}
	copyFallbackHook.Store(&fn)
}

func reportCopyFallback(v any) {
	if h := copyFallbackHook.Load(); h != nil {
		(*h)(fmt.Sprintf("%T", v))
	}
}

// needsCopy reports whether a payload has reference semantics that call
// for an isolating copy: pointers, maps, slices, and aggregates that
// transitively contain them. Scalars, strings, functions and channels
// are exempt.
func needsCopy(v any) bool {
	if v == nil {
		return false
	}
	return typeNeedsCopy(reflect.TypeOf(v))
}

// timeType is value-copied safely despite its internal pointer.
var timeType = reflect.TypeOf(time.Time{})

func typeNeedsCopy(t reflect.Type) bool {
	if t == timeType {
		return false
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		return true
	case reflect.Array:
		return typeNeedsCopy(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeNeedsCopy(t.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Interface:
		// dynamic content unknown at type level; resolved per value
		return true
	default:
		return false
	}
}

// deepCopy builds an isolated copy of v. The second return is false when
// a copy cannot be made: unexported reference-bearing struct fields,
// channels or functions buried in the structure, or the depth bound.
func deepCopy(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	out, ok := copyValue(rv, maxCopyDepth)
	if !ok {
		return nil, false
	}
	return out.Interface(), true
}

func copyValue(v reflect.Value, depth int) (reflect.Value, bool) {
	if depth <= 0 {
		return v, false
	}
	switch v.Kind() {
	case reflect.Invalid:
		return v, false
	case reflect.Ptr:
		if v.IsNil() {
			return v, true
		}
		elem, ok := copyValue(v.Elem(), depth-1)
		if !ok {
			return v, false
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(elem)
		return out, true
	case reflect.Map:
		if v.IsNil() {
			return v, true
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			k, ok := copyValue(iter.Key(), depth-1)
			if !ok {
				return v, false
			}
			val, ok := copyValue(iter.Value(), depth-1)
			if !ok {
				return v, false
			}
			out.SetMapIndex(k, val)
		}
		return out, true
	case reflect.Slice:
		if v.IsNil() {
			return v, true
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Cap())
		for i := 0; i < v.Len(); i++ {
			el, ok := copyValue(v.Index(i), depth-1)
			if !ok {
				return v, false
			}
			out.Index(i).Set(el)
		}
		return out, true
	case reflect.Array:
		if !typeNeedsCopy(v.Type()) {
			return v, true
		}
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			el, ok := copyValue(v.Index(i), depth-1)
			if !ok {
				return v, false
			}
			out.Index(i).Set(el)
		}
		return out, true
	case reflect.Struct:
		if v.Type() == timeType {
			return v, true
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if !typeNeedsCopy(v.Type().Field(i).Type) {
				continue
			}
			if !out.Field(i).CanSet() {
				// unexported reference field; isolation impossible
				return v, false
			}
			el, ok := copyValue(v.Field(i), depth-1)
			if !ok {
				return v, false
			}
			out.Field(i).Set(el)
		}
		return out, true
	case reflect.Interface:
		if v.IsNil() {
			return v, true
		}
		inner, ok := copyValue(v.Elem(), depth-1)
		if !ok {
			return v, false
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(inner)
		return out, true
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v, false
	default:
		return v, true
	}
}
