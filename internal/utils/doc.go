// Package utils provides small helpers shared by the client packages:
// the HTTP client wrapper, identifier generation and content fingerprints.
package utils
