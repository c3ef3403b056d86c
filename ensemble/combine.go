package ensemble

import "fmt"

// Source tags which of the two input ensembles a combined row came from.
type Source int

const (
	SourceA Source = iota
	SourceB
)

func (s Source) String() string {
	switch s {
	case SourceA:
		return "A"
	case SourceB:
		return "B"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// FrameRef identifies the origin of one row of a combined matrix: the
// source ensemble, the frame index within that ensemble, and the global
// frame index in the untrimmed source trajectory.
//
// Global differs from Local by the start-frame offset that was applied
// upstream when the feature data was extracted. Downstream trajectory
// writers use (Source, Local) to pick the frame from the trimmed data or
// Global to address the original file.
type FrameRef struct {
	Source Source
	Local  int
	Global int
}

// Combined is the concatenation of two ensembles' rows (all of A followed
// by all of B) with per-row provenance.
type Combined struct {
	Data   []float64 // row-major, NumFrames x Dim
	Dim    int
	Frames []FrameRef
}

// NumFrames returns the total number of combined rows.
func (c *Combined) NumFrames() int { return len(c.Frames) }

// Row returns the feature vector of combined row i as a read-only view.
func (c *Combined) Row(i int) []float64 {
	return c.Data[i*c.Dim : (i+1)*c.Dim]
}

// Combine concatenates two ensembles into one matrix and records frame
// provenance. startFrame is the trajectory-level offset already applied
// upstream; it shifts every Global index so that frame lookups in the
// untrimmed trajectories remain correct.
//
// The ensembles must share the identical feature name list; frame counts
// may differ.
func Combine(a, b *Ensemble, startFrame int) (*Combined, error) {
	if err := SameFeatures(a, b); err != nil {
		return nil, err
	}

	dim := a.NumFeatures()
	total := a.NumFrames() + b.NumFrames()

	data := make([]float64, 0, total*dim)
	data = append(data, a.data...)
	data = append(data, b.data...)

	frames := make([]FrameRef, 0, total)
	for i := 0; i < a.NumFrames(); i++ {
		frames = append(frames, FrameRef{Source: SourceA, Local: i, Global: i + startFrame})
	}
	for i := 0; i < b.NumFrames(); i++ {
		frames = append(frames, FrameRef{Source: SourceB, Local: i, Global: i + startFrame})
	}

	return &Combined{Data: data, Dim: dim, Frames: frames}, nil
}

// Single wraps one ensemble in the combined representation, tagging every
// row with the given source. It allows single-ensemble analyses to share
// the concatenation and provenance conventions of the two-ensemble path.
func Single(e *Ensemble, src Source, startFrame int) *Combined {
	frames := make([]FrameRef, e.NumFrames())
	for i := range frames {
		frames[i] = FrameRef{Source: src, Local: i, Global: i + startFrame}
	}

	data := make([]float64, len(e.data))
	copy(data, e.data)

	return &Combined{Data: data, Dim: e.NumFeatures(), Frames: frames}
}
