package lens

import "github.com/samber/lo"

// First focuses on the first element of a pair.
func First[A, B any]() Lens[lo.Tuple2[A, B], A] {
	return Lens[lo.Tuple2[A, B], A]{
		get: func(t lo.Tuple2[A, B]) A { return t.A },
		set: func(a A, t lo.Tuple2[A, B]) lo.Tuple2[A, B] { return lo.T2(a, t.B) },
	}
}

// Second focuses on the second element of a pair.
func Second[A, B any]() Lens[lo.Tuple2[A, B], B] {
	return Lens[lo.Tuple2[A, B], B]{
		get: func(t lo.Tuple2[A, B]) B { return t.B },
		set: func(b B, t lo.Tuple2[A, B]) lo.Tuple2[A, B] { return lo.T2(t.A, b) },
	}
}

// MapAt focuses on the value stored under key. A missing key reads as def.
// Set copies the map.
func MapAt[K comparable, V any](key K, def V) Lens[map[K]V, V] {
	return Lens[map[K]V, V]{
		get: func(m map[K]V) V {
			if v, ok := m[key]; ok {
				return v
			}
			return def
		},
		set: func(v V, m map[K]V) map[K]V {
			result := make(map[K]V, len(m)+1)
			for k, val := range m {
				result[k] = val
			}
			result[key] = v
			return result
		},
	}
}

// SliceAt focuses on the element at index. An out of range index reads as def
// and Set returns the slice unchanged, so SetGet does not hold there.
func SliceAt[T any](index int, def T) Lens[[]T, T] {
	return Lens[[]T, T]{
		get: func(s []T) T {
			if index >= 0 && index < len(s) {
				return s[index]
			}
			return def
		},
		set: func(v T, s []T) []T {
			if index < 0 || index >= len(s) {
				return s
			}
			result := make([]T, len(s))
			copy(result, s)
			result[index] = v
			return result
		},
	}
}
