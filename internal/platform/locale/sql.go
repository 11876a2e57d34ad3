// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package locale

import "fmt"

// SQLResolve is [Text.Resolve] as a PostgreSQL expression over a JSONB
// column, so that filters and suggestions see the same name a card shows.
//
// column is the qualified column ("a.name"); requested and fallback are the
// positions of the bound locale codes. The expression is never NULL.
func SQLResolve(column string, requested, fallback int) string {
	return fmt.Sprintf(`COALESCE(
		NULLIF(btrim(%[1]s->>$%[2]d), ''),
		NULLIF(btrim(%[1]s->>$%[3]d), ''),
		(SELECT btrim(t.value) FROM jsonb_each_text(%[1]s) t
		 WHERE btrim(t.value) <> '' ORDER BY t.key COLLATE "C" LIMIT 1),
		'')`, column, requested, fallback)
}
