// Package pkgroutine runs named background tasks such as the session
// janitor. A Manager bounds concurrency and turns panics into errors
// reported by Wait.
package pkgroutine
