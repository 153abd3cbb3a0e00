// Package transform provides normalizers for form values. Every function
// returns a new map and leaves its input untouched.
package transform
