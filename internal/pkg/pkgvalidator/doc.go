// Package pkgvalidator validates request structs using go-playground/validator
// and reports failures as pkgerror validation errors.
//
// Field names in messages come from the `query` tag, then the `json` tag, so
// clients see the parameter they actually sent.
package pkgvalidator
