// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, header names, page sizes and
cache keys that are shared between different layers of the system.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "bazaar-api"
	AppVersion = "0.1.0-dev"

	// MetricsNamespace prefixes every Prometheus series exported by the API.
	MetricsNamespace = "bazaar"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID      = "X-Request-ID"
	HeaderOrigin          = "Origin"
	HeaderXRealIP         = "X-Real-IP"
	HeaderXForwardedFor   = "X-Forwarded-For"
	HeaderAuthorization   = "Authorization"
	HeaderAcceptLanguage  = "Accept-Language"
	HeaderContentLanguage = "Content-Language"
	HeaderContentType     = "Content-Type"
	HeaderVary            = "Vary"
)

// # Query Parameters

const (
	// QueryLang overrides the negotiated locale ("?lang=ru"). JSON bodies
	// may carry the same field.
	QueryLang = "lang"

	// MaxLocaleBodyBytes bounds how much of a JSON body is inspected for "lang".
	MaxLocaleBodyBytes = 1 << 20

	// QueryDeviceID identifies an anonymous favoriting device.
	QueryDeviceID = "device_id"
)

// # Page Sizes

const (
	AdsPageSize       = 20
	MyAdsPageSize     = 10
	FavoritesPageSize = 10
	MySearchPageSize  = 10

	// PopularDefaultLimit is the size of the trending list when no limit is given.
	PopularDefaultLimit = 10

	// AutocompleteLimit caps the number of name suggestions.
	AutocompleteLimit = 10
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixCategories = "cache:categories:"
	RedisPrefixRegions    = "cache:regions:"
	RedisPrefixPopular    = "cache:popular:"
)
