// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice holds the generic slice helpers the services share.

Repositories return rows in database order; callers often need them back in
the order of an id list they already hold (a popularity ranking, a page of
favorites). [Reorder] does that without a second query.
*/
package slice

// Map applies transform to every element. A nil input stays nil.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Reorder returns items arranged in the order of keys.
//
// Keys without a matching item are skipped, and so are items whose key is
// not listed. A key listed twice yields its item once.
func Reorder[K comparable, T any](keys []K, items []T, key func(T) K) []T {
	byKey := make(map[K]T, len(items))
	for _, item := range items {
		byKey[key(item)] = item
	}

	ordered := make([]T, 0, min(len(keys), len(items)))
	for _, k := range keys {
		if item, ok := byKey[k]; ok {
			ordered = append(ordered, item)
			delete(byKey, k)
		}
	}
	return ordered
}
