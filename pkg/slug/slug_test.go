// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bazaar/pkg/slug"
)

/*
TestFrom covers the slug pipeline for the scripts ads are written in.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_latin", "Phone", "phone"},
		{"spaces_and_digits", "iPhone 13 Pro 256GB", "iphone-13-pro-256gb"},
		{"uzbek_apostrophe", "Oʻzbekiston gʻalla", "ozbekiston-galla"},
		{"ascii_apostrophe", "O'zbek to'n", "ozbek-ton"},
		{"accents", "Café Crème", "cafe-creme"},
		{"punctuation_collapsed", "--Sale!!  50% off--", "sale-50-off"},
		{"cyrillic_only", "Телефон", ""},
		{"mixed_scripts", "Samsung Телефон A52", "samsung-a52"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
