// Package projection projects feature matrices onto precomputed principal
// axes and sorts frames along the projection.
//
// The eigen-decomposition itself is an external collaborator: a Basis is
// constructed from an already-computed eigenvector matrix and is bound to
// the feature-name ordering the eigenvectors were derived from. Every
// projection verifies that binding, so a matrix can never be projected
// onto axes computed for a different feature ordering.
package projection
