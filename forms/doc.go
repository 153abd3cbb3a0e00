// Package forms provides preset field rules and the built-in form rule sets
// for transfers and contacts.
//
// Every function builds a fresh value, so rule sets are never shared
// between forms.
package forms
