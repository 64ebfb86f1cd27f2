// Package pkguid generates identifiers.
//
// Dataset sessions and correlation ids are UUIDv7 strings (StringID).
// Rendered pages are tagged with Snowflake numbers (NumberID) so log lines of
// one render can be grouped without a lookup.
package pkguid
