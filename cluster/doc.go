// Package cluster partitions the combined frames of two ensembles into
// conformational clusters.
//
// Two algorithms are available: k-means with a fixed cluster count and
// iteration cap, and regular-space clustering with a minimum inter-center
// distance and a data-dependent cluster count. Cluster ids are dense and
// 0-based, derived from the actual assignments. Every result carries the
// full frame provenance, so downstream trajectory writers can resolve
// each cluster member back to its source trajectory and frame.
package cluster
