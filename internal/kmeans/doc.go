// Package kmeans implements k-means clustering for combined feature
// matrices.
//
// Used internally by the cluster package to partition the concatenated
// frames of two ensembles.
package kmeans
