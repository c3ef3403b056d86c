package cluster

import (
	"context"
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/mdcompare/distance"
	"github.com/hupe1980/mdcompare/ensemble"
	"github.com/hupe1980/mdcompare/internal/kmeans"
	"github.com/hupe1980/mdcompare/internal/regspace"
	"github.com/hupe1980/mdcompare/util"
)

// Stat describes one realized cluster.
type Stat struct {
	Centroid   []float64 // arithmetic mean of member feature vectors
	Population int
	WSS        float64 // sum of squared Euclidean distances of members to the centroid
}

// Result is an immutable cluster assignment over a combined matrix, with
// per-cluster statistics and frame provenance.
//
// Cluster ids are dense, 0-based and derived from the actual assignments;
// for regular-space clustering the realized count is data-dependent.
type Result struct {
	Algorithm   Algorithm
	NumClusters int
	Assignments []int               // cluster id per combined row
	Frames      []ensemble.FrameRef // provenance per combined row
	Stats       []Stat              // indexed by cluster id
	TotalWSS    float64

	members []*roaring.Bitmap // combined row indices per cluster id
}

// Combined concatenates two ensembles (all rows of a followed by all rows
// of b) and clusters the joint feature space. startFrame is the
// trajectory-level offset already applied upstream; it is preserved in the
// frame provenance so downstream frame lookups in the untrimmed
// trajectories stay correct.
func Combined(a, b *ensemble.Ensemble, startFrame int, opts ...Option) (*Result, error) {
	c, err := ensemble.Combine(a, b, startFrame)
	if err != nil {
		return nil, err
	}
	return run(c, applyOptions(opts))
}

// Single clusters one ensemble using the same machinery as Combined. All
// frames are tagged ensemble.SourceA.
func Single(e *ensemble.Ensemble, startFrame int, opts ...Option) (*Result, error) {
	return run(ensemble.Single(e, ensemble.SourceA, startFrame), applyOptions(opts))
}

func run(c *ensemble.Combined, o *options) (*Result, error) {
	var raw []int

	switch o.algorithm {
	case KMeans:
		if o.numClusters <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidNumClusters, o.numClusters)
		}
		_, assignments, err := kmeans.Cluster(c.Data, c.Dim, o.numClusters, util.NewRNG(o.seed), o.maxIter)
		if err != nil {
			return nil, fmt.Errorf("%w: %d frames, %d clusters", ErrTooFewFrames, c.NumFrames(), o.numClusters)
		}
		raw = assignments
	case RegularSpace:
		if o.minDist <= 0 {
			return nil, fmt.Errorf("%w: got %g", ErrInvalidMinDist, o.minDist)
		}
		_, raw = regspace.Cluster(c.Data, c.Dim, o.minDist)
	default:
		return nil, &ErrUnknownAlgorithm{Name: o.algorithm.String()}
	}

	res := newResult(o.algorithm, c, raw)

	for id, s := range res.Stats {
		o.logger.WithCluster(id).Debug("cluster statistics",
			"population", s.Population,
			"wss", s.WSS,
		)
	}

	o.logger.LogClustering(context.Background(), c.NumFrames(), res.NumClusters, res.TotalWSS, nil)

	return res, nil
}

// newResult makes raw assignments dense, computes per-cluster statistics
// and records membership. Realized ids are assigned in ascending order of
// the raw ids that actually occur, so an algorithm emitting an empty id
// never produces an empty cluster here.
func newResult(alg Algorithm, c *ensemble.Combined, raw []int) *Result {
	rawIDs := make([]int, 0)
	seen := make(map[int]bool)
	for _, id := range raw {
		if !seen[id] {
			seen[id] = true
			rawIDs = append(rawIDs, id)
		}
	}
	sort.Ints(rawIDs)

	dense := make(map[int]int, len(rawIDs))
	for i, id := range rawIDs {
		dense[id] = i
	}
	k := len(rawIDs)

	res := &Result{
		Algorithm:   alg,
		NumClusters: k,
		Assignments: make([]int, len(raw)),
		Frames:      c.Frames,
		Stats:       make([]Stat, k),
		members:     make([]*roaring.Bitmap, k),
	}
	for i := range res.members {
		res.members[i] = roaring.New()
	}

	sums := make([][]float64, k)
	for i := range sums {
		sums[i] = make([]float64, c.Dim)
	}

	for row, id := range raw {
		cid := dense[id]
		res.Assignments[row] = cid
		res.members[cid].Add(uint32(row))
		res.Stats[cid].Population++
		floats.Add(sums[cid], c.Row(row))
	}

	for cid := range res.Stats {
		floats.Scale(1/float64(res.Stats[cid].Population), sums[cid])
		res.Stats[cid].Centroid = sums[cid]
	}

	for row, cid := range res.Assignments {
		res.Stats[cid].WSS += distance.SquaredL2(c.Row(row), res.Stats[cid].Centroid)
	}
	for cid := range res.Stats {
		res.TotalWSS += res.Stats[cid].WSS
	}

	return res
}

// Members returns the frames assigned to the given cluster, ordered by
// combined row index.
func (r *Result) Members(id int) []ensemble.FrameRef {
	out := make([]ensemble.FrameRef, 0, r.members[id].GetCardinality())

	it := r.members[id].Iterator()
	for it.HasNext() {
		out = append(out, r.Frames[it.Next()])
	}

	return out
}

// FramesByCluster returns, for every cluster id, the ordered list of
// member frames. This is the mapping handed to the trajectory-writer
// collaborator.
func (r *Result) FramesByCluster() map[int][]ensemble.FrameRef {
	out := make(map[int][]ensemble.FrameRef, r.NumClusters)
	for id := 0; id < r.NumClusters; id++ {
		out[id] = r.Members(id)
	}
	return out
}

// SourceAssignments returns the cluster ids of the given source's frames
// in local frame order, recovering the per-ensemble membership from the
// combined assignment.
func (r *Result) SourceAssignments(src ensemble.Source) []int {
	var out []int
	for row, ref := range r.Frames {
		if ref.Source == src {
			out = append(out, r.Assignments[row])
		}
	}
	return out
}

// Populations returns, for every cluster id, the number of member frames
// that came from the given source.
func (r *Result) Populations(src ensemble.Source) []int {
	out := make([]int, r.NumClusters)
	for row, ref := range r.Frames {
		if ref.Source == src {
			out[r.Assignments[row]]++
		}
	}
	return out
}
