// Package divergence quantifies, per feature, how differently two
// ensembles are distributed.
//
// For every feature it can compute Kullback-Leibler divergences in both
// directions, the Jensen-Shannon distance, the two-sample
// Kolmogorov-Smirnov statistic with p-value, and the difference of means.
//
// Both marginal densities of a feature are estimated over one shared
// bin-edge set derived from the pooled sample. The shared edges make the
// two estimates comparable and avoid degenerate KL values caused by
// non-overlapping bin supports. KL divergence can still be +Inf when the
// empirical supports are disjoint within the shared edges; that value is
// propagated in the result, not treated as an error.
package divergence
