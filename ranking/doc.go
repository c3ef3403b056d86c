// Package ranking sorts and filters scored features.
//
// Sorting and filtering are independent operations: sorting never drops
// entries and filtering never reorders survivors.
package ranking
