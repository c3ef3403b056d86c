package projection

import (
	"context"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/mdcompare/ensemble"
)

// Project computes the signed scalar projection of every frame of the
// ensemble onto the given principal axis: the dot product of each frame's
// feature vector with the eigenvector.
func Project(e *ensemble.Ensemble, basis *Basis, axis int) ([]float64, error) {
	if err := basis.matches(e); err != nil {
		return nil, err
	}

	v, err := basis.Axis(axis)
	if err != nil {
		return nil, err
	}

	proj := mat.NewVecDense(e.NumFrames(), nil)
	proj.MulVec(e.Matrix(), mat.NewVecDense(len(v), v))

	return proj.RawVector().Data, nil
}

// SortedFrame is one frame in projection-sorted order: its provenance plus
// its projection value.
type SortedFrame struct {
	ensemble.FrameRef
	Value float64
}

// SortCombined concatenates two ensembles, projects every combined frame
// onto the given axis and returns the frames sorted by ascending
// projection value. Ties keep their input order (stable sort). The
// resulting (source, local index) sequence is what the trajectory writer
// consumes to re-emit frames in sorted order.
func SortCombined(a, b *ensemble.Ensemble, basis *Basis, axis, startFrame int, opts ...Option) ([]SortedFrame, error) {
	o := applyOptions(opts)

	projA, err := Project(a, basis, axis)
	if err != nil {
		o.logger.LogProjection(context.Background(), axis, 0, err)
		return nil, err
	}
	projB, err := Project(b, basis, axis)
	if err != nil {
		o.logger.LogProjection(context.Background(), axis, 0, err)
		return nil, err
	}

	c, err := ensemble.Combine(a, b, startFrame)
	if err != nil {
		o.logger.LogProjection(context.Background(), axis, 0, err)
		return nil, err
	}

	values := append(projA, projB...)
	sorted := sortFrames(c.Frames, values)

	o.logger.LogProjection(context.Background(), axis, len(sorted), nil)

	return sorted, nil
}

// SortEnsemble projects a single ensemble onto the given axis and returns
// its frames sorted by ascending projection value.
func SortEnsemble(e *ensemble.Ensemble, basis *Basis, axis, startFrame int, opts ...Option) ([]SortedFrame, error) {
	o := applyOptions(opts)

	proj, err := Project(e, basis, axis)
	if err != nil {
		o.logger.LogProjection(context.Background(), axis, 0, err)
		return nil, err
	}

	c := ensemble.Single(e, ensemble.SourceA, startFrame)
	sorted := sortFrames(c.Frames, proj)

	o.logger.LogProjection(context.Background(), axis, len(sorted), nil)

	return sorted, nil
}

func sortFrames(frames []ensemble.FrameRef, values []float64) []SortedFrame {
	out := make([]SortedFrame, len(frames))
	for i := range frames {
		out[i] = SortedFrame{FrameRef: frames[i], Value: values[i]}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})

	return out
}

// Series holds the projection value series of both ensembles along one
// axis, for the reporting collaborator.
type Series struct {
	Axis int
	A    []float64
	B    []float64
}

// CompareProjections projects both ensembles onto the first numAxes
// principal axes and returns the per-axis value series.
func CompareProjections(a, b *ensemble.Ensemble, basis *Basis, numAxes int) ([]Series, error) {
	out := make([]Series, 0, numAxes)

	for axis := 0; axis < numAxes; axis++ {
		projA, err := Project(a, basis, axis)
		if err != nil {
			return nil, err
		}
		projB, err := Project(b, basis, axis)
		if err != nil {
			return nil, err
		}

		out = append(out, Series{Axis: axis, A: projA, B: projB})
	}

	return out, nil
}
