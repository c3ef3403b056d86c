// Package ensemble holds per-frame feature matrices and the frame
// provenance model used when two ensembles are concatenated.
//
// An Ensemble is a read-only (frames x features) matrix with a parallel
// list of feature names. Combine stitches two ensembles together and
// records, for every row of the combined matrix, which source ensemble
// and which original frame it came from. That FrameRef triple is the only
// bridge between a row of the mathematical feature matrix and a frame in
// an external trajectory file.
package ensemble
