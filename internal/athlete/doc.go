// Package athlete fetches UFC athlete profile and roster pages and extracts
// typed fields from them.
//
// Extraction is lazy: a Profile keeps the parsed document and every accessor
// locates and parses its field on demand using the field table in fields.go.
// Optional fields report absence through a boolean instead of an error.
package athlete
