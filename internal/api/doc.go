// Package api contains the HTTP transport layer: request/response models,
// handlers, and the error-to-status mapping shared across them.
package api
