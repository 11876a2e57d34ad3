// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package locale_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/internal/platform/postgres/pgtest"
)

/*
TestSQLResolve_MatchesText evaluates the SQL fallback against [locale.Text.Resolve].
*/
func TestSQLResolve_MatchesText(t *testing.T) {
	pool := pgtest.Start(t)
	ctx := context.Background()
	expression := locale.SQLResolve("$1::jsonb", 2, 3)

	tests := []struct {
		name      string
		text      locale.Text
		requested locale.Code
	}{
		{"requested_present", locale.Text{"uz": "Telefon", "ru": "Телефон"}, locale.Russian},
		{"requested_missing", locale.Text{"uz": "Telefon"}, locale.Russian},
		{"requested_blank", locale.Text{"uz": "Telefon", "ru": "  "}, locale.Russian},
		{"padded_value", locale.Text{"ru": "  Телефон "}, locale.Russian},
		{"neither_uses_first_code", locale.Text{"ru": "Телефон", "en": "Phone"}, locale.Code("kk")},
		{"default_blank_uses_any", locale.Text{"uz": " ", "ru": "Телефон"}, locale.Code("kk")},
		{"empty", locale.Text{}, locale.Uzbek},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.text)
			require.NoError(t, err)

			var got string
			err = pool.QueryRow(ctx, "SELECT "+expression, string(raw), tt.requested.String(), locale.Uzbek.String()).Scan(&got)
			require.NoError(t, err)

			assert.Equal(t, tt.text.Resolve(tt.requested, locale.Uzbek), got)
		})
	}
}
