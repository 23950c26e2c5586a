// Package service contains the business logic.
//
// It sits between the handler and the outbound delivery clients.
// It receives validated data from the handler, runs the sanitize ->
// format -> notify -> confirm pipeline, and reports the acknowledgment
// the handler returns to the caller.
package service
