// Package wallhaven is a typed client for the Wallhaven REST API
// (https://wallhaven.cc/api/v1).
//
// A Client owns its HTTP transport and a token-bucket rate limiter shared
// by every call made through it. Search filters are expressed as validated
// value types and rendered into the API's wire format by SearchQuery.Values;
// responses decode into typed results. Failures surface as one of the typed
// errors in this package (ValidationError, AuthenticationError,
// RateLimitedError, RequestError, DecodeError) and are never retried.
package wallhaven
