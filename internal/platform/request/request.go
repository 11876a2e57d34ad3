// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It is the single place where transport details (chi URL params, query strings,
JWT claims, the negotiated locale) become the plain values services accept.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bazaar/internal/platform/actor"
	"github.com/taibuivan/bazaar/internal/platform/apperr"
	"github.com/taibuivan/bazaar/internal/platform/constants"
	"github.com/taibuivan/bazaar/internal/platform/ctxutil"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/internal/platform/sec"
	"github.com/taibuivan/bazaar/internal/platform/validate"
)

/*
DecodeJSON reads the request body into target.

Returns validate.ErrInvalidJSON if the body is not valid JSON for target.
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Int64Param parses a positive numeric URL parameter.

Returns a ValidationError naming the parameter when it is not a positive integer.
*/
func Int64Param(request *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(chi.URLParam(request, name), 10, 64)
	if err != nil || value <= 0 {
		return 0, apperr.ValidationError("Invalid identifier", apperr.FieldError{
			Field:   name,
			Message: "Must be a positive integer",
		})
	}
	return value, nil
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredUserID returns the account id of the authenticated caller.

Returns apperr.Unauthorized when the request is anonymous.
*/
func RequiredUserID(request *http.Request) (int64, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return 0, apperr.Unauthorized("Authentication required")
	}
	return claims.UserID, nil
}

/*
OptionalUserID returns the caller's account id, or nil when anonymous.
*/
func OptionalUserID(request *http.Request) *int64 {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil
	}
	id := claims.UserID
	return &id
}

/*
Locale returns the language negotiated by the locale middleware.
*/
func Locale(request *http.Request) locale.Code {
	return ctxutil.GetLocale(request.Context())
}

/*
DeviceID returns the anonymous device identifier from ?device_id=.
*/
func DeviceID(request *http.Request) string {
	return strings.TrimSpace(request.URL.Query().Get(constants.QueryDeviceID))
}

/*
Actor resolves who is favoriting: the authenticated user, else the device id
from the body (when given) or the query string.

Returns a ValidationError on device_id when neither is present.
*/
func Actor(request *http.Request, bodyDeviceID string) (actor.Actor, error) {
	deviceID := strings.TrimSpace(bodyDeviceID)
	if deviceID == "" {
		deviceID = DeviceID(request)
	}
	return actor.Resolve(OptionalUserID(request), deviceID)
}

/*
OptionalActor is [Actor] for read paths: an anonymous request without a
device id resolves to the zero actor, for which nothing is liked.
*/
func OptionalActor(request *http.Request) actor.Actor {
	return actor.Optional(OptionalUserID(request), DeviceID(request))
}
