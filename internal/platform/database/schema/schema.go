// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the table and column names of the PostgreSQL schema.
//
// Repositories build SQL from these definitions instead of string literals so
// that a rename in a migration is a compile-time change here.
package schema

import "strings"

// Prefixed qualifies each column with a table alias: Prefixed("a", "id", "slug") == "a.id, a.slug".
func Prefixed(alias string, columns ...string) string {
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}
