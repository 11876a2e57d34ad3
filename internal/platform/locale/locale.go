// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package locale models multilingual content and request language negotiation.

Every user-visible name and description in the catalogue (categories, ads,
regions) is stored as a [Text]: a mapping from locale code to string. Reads
never inspect per-locale columns; they call [Text.Resolve] with the locale of
the current request and the configured default.

The [Negotiator] picks that request locale from transport signals. It is used
by the HTTP middleware only. Services receive a plain [Code] argument and never
consult ambient state.
*/
package locale

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Code is a supported two-letter language code.
type Code string

const (
	// Uzbek is the platform default.
	Uzbek Code = "uz"

	// Russian is the secondary catalogue language.
	Russian Code = "ru"
)

// String implements [fmt.Stringer].
func (c Code) String() string { return string(c) }

// # Localized Text

// Text holds one translation per locale. It is stored as JSONB.
type Text map[Code]string

// Resolve returns the trimmed translation for requested, falling back to fallback.
//
// When neither is present it returns the first non-blank translation in
// locale-code order so that partially translated rows are still readable.
// An empty Text resolves to "". [SQLResolve] is the same rule in SQL.
func (t Text) Resolve(requested, fallback Code) string {
	if v := strings.TrimSpace(t[requested]); v != "" {
		return v
	}
	if v := strings.TrimSpace(t[fallback]); v != "" {
		return v
	}

	codes := make([]Code, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	for _, code := range codes {
		if v := strings.TrimSpace(t[code]); v != "" {
			return v
		}
	}
	return ""
}

// Has reports whether a non-blank translation exists for code.
func (t Text) Has(code Code) bool {
	return strings.TrimSpace(t[code]) != ""
}

// Clean returns a copy without blank translations and with values trimmed.
func (t Text) Clean() Text {
	out := make(Text, len(t))
	for code, v := range t {
		if v = strings.TrimSpace(v); v != "" {
			out[code] = v
		}
	}
	return out
}

// # Catalog

// Catalog is the configured locale set handed to services.
//
// It carries the default used by every localized read, so the fallback rule
// lives in one place: [Catalog.Resolve].
type Catalog struct {
	Default   Code
	Supported []Code
}

// Resolve returns text in the requested locale, else in the default one.
func (c Catalog) Resolve(text Text, requested Code) string {
	return text.Resolve(c.Normalize(requested), c.Default)
}

// Normalize maps an empty or unsupported code to the default.
func (c Catalog) Normalize(code Code) Code {
	if slices.Contains(c.Supported, code) {
		return code
	}
	return c.Default
}

// # Negotiation

// Negotiator selects the response locale among the supported set.
type Negotiator struct {
	supported []Code
	fallback  Code
	matcher   language.Matcher
}

// NewNegotiator builds a negotiator. The fallback must be one of supported.
func NewNegotiator(fallback string, supported []string) (*Negotiator, error) {
	if len(supported) == 0 {
		return nil, fmt.Errorf("locale: no supported locales configured")
	}

	// The matcher treats its first tag as the default answer, so the fallback goes first.
	codes := []Code{Code(fallback)}
	for _, raw := range supported {
		code := Code(strings.ToLower(strings.TrimSpace(raw)))
		if code != "" && !slices.Contains(codes, code) {
			codes = append(codes, code)
		}
	}

	if !slices.ContainsFunc(supported, func(s string) bool { return strings.EqualFold(strings.TrimSpace(s), fallback) }) {
		return nil, fmt.Errorf("locale: default %q is not among supported locales %v", fallback, supported)
	}

	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(string(code))
		if err != nil {
			return nil, fmt.Errorf("locale: invalid locale %q: %w", code, err)
		}
		tags = append(tags, tag)
	}

	return &Negotiator{
		supported: codes,
		fallback:  codes[0],
		matcher:   language.NewMatcher(tags),
	}, nil
}

// Fallback returns the configured default locale.
func (n *Negotiator) Fallback() Code { return n.fallback }

// Supported returns the supported locales, default first.
func (n *Negotiator) Supported() []Code { return slices.Clone(n.supported) }

// Catalog returns the locale set for services.
func (n *Negotiator) Catalog() Catalog {
	return Catalog{Default: n.fallback, Supported: n.Supported()}
}

// Negotiate resolves the request locale.
//
// Order: Accept-Language header, then each explicit value (query, then body),
// then the default. A header that matches none of the supported locales does
// not win; the explicit values are consulted next.
func (n *Negotiator) Negotiate(acceptLanguage string, explicit ...string) Code {
	if code, ok := n.Match(acceptLanguage, explicit...); ok {
		return code
	}
	return n.fallback
}

// Match is [Negotiator.Negotiate] without the default: ok is false when no
// source names a supported locale.
func (n *Negotiator) Match(acceptLanguage string, explicit ...string) (Code, bool) {
	if code, ok := n.fromHeader(acceptLanguage); ok {
		return code, true
	}
	for _, raw := range explicit {
		if code, ok := n.Parse(raw); ok {
			return code, true
		}
	}
	return "", false
}

// Parse maps a single language value ("ru", "ru-RU", "UZ") to a supported code.
func (n *Negotiator) Parse(raw string) (Code, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}

	base, _ := tag.Base()
	code := Code(base.String())
	if slices.Contains(n.supported, code) {
		return code, true
	}
	return "", false
}

// fromHeader runs the Accept-Language list through the matcher.
func (n *Negotiator) fromHeader(header string) (Code, bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}

	_, index, confidence := n.matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return n.supported[index], true
}
