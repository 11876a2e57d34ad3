// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/taibuivan/bazaar/internal/platform/constants"
	"github.com/taibuivan/bazaar/internal/platform/ctxutil"
	"github.com/taibuivan/bazaar/internal/platform/locale"
)

// Locale negotiates the response language and stores it in the context.
//
// The Accept-Language header is consulted first, then ?lang=, then a "lang"
// field of a JSON body, then the configured default. The answer is echoed in
// Content-Language. The body stays readable for the handler.
func Locale(negotiator *locale.Negotiator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			code, ok := negotiator.Match(
				request.Header.Get(constants.HeaderAcceptLanguage),
				request.URL.Query().Get(constants.QueryLang),
			)
			if !ok {
				code = negotiator.Negotiate("", bodyLang(request))
			}

			header := writer.Header()
			header.Set(constants.HeaderContentLanguage, code.String())
			header.Add(constants.HeaderVary, constants.HeaderAcceptLanguage)

			next.ServeHTTP(writer, request.WithContext(ctxutil.WithLocale(request.Context(), code)))
		})
	}
}

// bodyLang peeks at a JSON body for its "lang" field and rewinds the body.
// Malformed or oversized bodies yield "" and are left for the handler to reject.
func bodyLang(request *http.Request) string {
	if request.Body == nil || request.Body == http.NoBody {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(request.Header.Get(constants.HeaderContentType))
	if err != nil || mediaType != "application/json" {
		return ""
	}

	original := request.Body
	raw, err := io.ReadAll(io.LimitReader(original, constants.MaxLocaleBodyBytes+1))
	request.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(raw), original), original}
	if err != nil || len(raw) > constants.MaxLocaleBodyBytes {
		return ""
	}

	var payload struct {
		Lang string `json:"lang"`
	}
	if json.Unmarshal(raw, &payload) != nil {
		return ""
	}
	return payload.Lang
}
