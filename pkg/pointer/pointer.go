// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer handles the optional (nil-able) fields of filters and
// request payloads.
package pointer

import "strings"

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, or returns the zero value when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// TrimmedString trims an optional string. Blank input becomes nil, so an
// empty field and a missing one mean the same thing.
func TrimmedString(p *string) *string {
	if p == nil {
		return nil
	}
	if trimmed := strings.TrimSpace(*p); trimmed != "" {
		return &trimmed
	}
	return nil
}
