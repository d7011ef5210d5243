// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts HTTP to the grade service: form-style text
// values are parsed into numbers and dates here, and service errors are
// mapped to status codes and safe messages.
package api
