// Package distance provides vector distance calculations for feature-space
// analysis. All functions operate on float64 feature vectors of equal
// length.
package distance
