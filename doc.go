// Package mdcompare provides statistical comparison of structural-feature
// ensembles from molecular dynamics trajectories.
//
// Given two ensembles of per-frame features (torsion angles, inter-residue
// distances), mdcompare quantifies per feature how differently the two
// ensembles are distributed, and supports combined clustering and principal
// component projection of the joint feature space with full frame
// provenance.
//
// # Packages
//
//	ensemble    feature matrices, concatenation and frame provenance
//	divergence  KL divergence, Jensen-Shannon distance, KS test, mean difference
//	ranking     sorting and threshold filtering of scored features
//	cluster     combined k-means / regular-space clustering with WSS bookkeeping
//	projection  projection onto precomputed principal axes, sorted re-emission
//
// # Statistics Pipeline
//
//	a, _ := ensemble.New(names, dataA)
//	b, _ := ensemble.New(names, dataB)
//	res, _ := divergence.Compare(a, b)
//	ranked, _ := ranking.SortByScore(res.Names, res.JSDistance)
//
// # Clustering Pipeline
//
//	cr, _ := cluster.Combined(a, b, startFrame,
//	    cluster.WithAlgorithm(cluster.KMeans),
//	    cluster.WithNumClusters(3),
//	    cluster.WithSeed(42),
//	)
//	for id, frames := range cr.FramesByCluster() {
//	    // hand (source, local index) pairs to the trajectory writer
//	    _ = id
//	    _ = frames
//	}
//
// The core never touches trajectory files. Feature extraction, PCA
// eigen-decomposition and trajectory I/O are external collaborators; the
// core consumes feature matrices and eigenvectors and returns numeric
// tables and index mappings.
package mdcompare
