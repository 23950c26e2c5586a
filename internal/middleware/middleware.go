// Package middleware contains the HTTP middleware stack: CORS,
// panic recovery, secure headers, request correlation ids, the
// request-scoped logger, and the global error handler that turns
// every error into the API's JSON error envelope.
package middleware
