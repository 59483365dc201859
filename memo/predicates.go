package memo

import "reflect"

// Identical is the default equality predicate: identity in the sense of
// "the very same value". Comparable values compare with ==, which is
// pointer identity for pointers and channels and field-wise identity for
// comparable structs. Slices, maps and funcs are never comparable with ==,
// so they compare by the identity of their underlying data.
func Identical(next, prev any) bool {
	if next == nil || prev == nil {
		return next == nil && prev == nil
	}
	nt := reflect.TypeOf(next)
	if nt != reflect.TypeOf(prev) {
		return false
	}
	if nt.Comparable() {
		return next == prev
	}
	switch nt.Kind() {
	case reflect.Slice:
		nv, pv := reflect.ValueOf(next), reflect.ValueOf(prev)
		return nv.Len() == pv.Len() && nv.Pointer() == pv.Pointer()
	case reflect.Map, reflect.Func:
		return reflect.ValueOf(next).Pointer() == reflect.ValueOf(prev).Pointer()
	}
	return false
}

// DeepEqual trades speed for structural comparison. Useful as a
// WithEquality argument when extractors rebuild equal-but-fresh values
// and the rebuild cost is higher than a deep walk.
func DeepEqual(next, prev any) bool {
	return reflect.DeepEqual(next, prev)
}
