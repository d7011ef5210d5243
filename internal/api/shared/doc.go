// Package shared holds the request/response plumbing used by every HTTP
// handler: trace IDs, JSON decoding and validation, and error responses.
package shared
