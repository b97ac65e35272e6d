package stitch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"img-stitcher/internal/accel"
	"img-stitcher/internal/features"
	"img-stitcher/internal/match"
	"img-stitcher/internal/raster"
	"img-stitcher/pkg/geometry"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// consensusTolerance is how far apart, in pixels per axis, the leading
// vectors of a strip may be for the strip to count.
const consensusTolerance = 5

// Options controls a stitch run.
type Options struct {
	Axis features.Direction

	// Threshold is the corner intensity threshold.
	Threshold int
	// Similarity is the descriptor similarity a match must exceed.
	Similarity int
	// Radius is the non-maximum suppression window radius.
	Radius int
	// MaxPoints caps points kept per mask; 0 disables the cap.
	MaxPoints int

	// Band is the mask depth along the axis, measured from the shared edge.
	Band int
	// Span is the mask size across the axis. The edge is split into
	// strips of this size that are matched independently.
	Span int

	// Consensus keeps only the leading pair of a strip, and only when the
	// first three pairs of that strip agree.
	Consensus bool
	// Local enables per-line refinement of the placement.
	Local bool

	// Workers bounds concurrent strip searches; 0 means GOMAXPROCS.
	Workers int
}

// DefaultOptions returns the settings for stitching along axis.
func DefaultOptions(axis features.Direction) Options {
	o := Options{
		Axis:       axis,
		Threshold:  features.DefaultThreshold,
		Similarity: match.DefaultSimilarity,
		Radius:     features.DefaultRadius,
		Band:       1000,
		Span:       200,
	}
	if axis == features.Vertical {
		o.Band, o.Span = 1100, 100
		o.Consensus = true
		o.Local = true
	}
	return o
}

// Result is the outcome of a stitch.
type Result struct {
	Image        *raster.Buffer
	Displacement geometry.Point2D
	Pairs        []match.Pair
}

// Masks returns the strip pairs searched for b's offset from a. The A mask
// hugs a's far edge along the axis and the B mask b's near edge. The band is
// clamped so it fits both images.
func Masks(a, b *raster.Buffer, o Options) (masksA, masksB []geometry.RectInt) {
	along := func(buf *raster.Buffer) int { return o.Axis.Along(buf.Width, buf.Height) }
	across := func(buf *raster.Buffer) int { return o.Axis.Along(buf.Height, buf.Width) }

	band := min(o.Band, along(a)-1, along(b))
	span := o.Span
	if band <= 0 || span <= 0 {
		return nil, nil
	}
	start := along(a) - band - 1

	for i := 0; i < min(across(a), across(b))/span; i++ {
		if o.Axis == features.Vertical {
			masksA = append(masksA, geometry.NewRectInt(i*span, start, span, band))
			masksB = append(masksB, geometry.NewRectInt(i*span, 0, span, band))
		} else {
			masksA = append(masksA, geometry.NewRectInt(start, i*span, band, span))
			masksB = append(masksB, geometry.NewRectInt(0, i*span, band, span))
		}
	}
	return masksA, masksB
}

// FindPairs detects and matches features for every strip pair. Strips are
// searched concurrently but the result is ordered by strip.
func FindPairs(ctx context.Context, grayA, grayB *raster.Buffer, o Options) ([]match.Pair, error) {
	masksA, masksB := Masks(grayA, grayB, o)
	strips := make([][]match.Pair, len(masksA))

	g, ctx := errgroup.WithContext(ctx)
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(workers)

	for i := range masksA {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			setA := features.Search(grayA, masksA[i], o.Threshold, o.Axis, o.Radius, o.MaxPoints)
			setB := features.Search(grayB, masksB[i], o.Threshold, o.Axis, o.Radius, o.MaxPoints)
			pairs, err := match.Match(setA, setB, o.Similarity)
			if err != nil {
				return fmt.Errorf("strip %d: %w", i, err)
			}
			strips[i] = pairs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var pairs []match.Pair
	for i, strip := range strips {
		if !o.Consensus {
			pairs = append(pairs, strip...)
			continue
		}
		if p, ok := consensus(strip); ok {
			pairs = append(pairs, p)
		} else {
			log.WithField("strip", i).Debug("strip rejected, no consensus")
		}
	}
	return pairs, nil
}

// consensus returns the first pair of a strip when the first three pairs
// share a vector within consensusTolerance.
func consensus(pairs []match.Pair) (match.Pair, bool) {
	if len(pairs) < 3 {
		return match.Pair{}, false
	}
	a, b, c := pairs[0].Vector(), pairs[1].Vector(), pairs[2].Vector()
	if geometry.Abs(a.X-b.X) < consensusTolerance &&
		geometry.Abs(a.Y-b.Y) < consensusTolerance &&
		geometry.Abs(a.Y-c.Y) < consensusTolerance {
		return pairs[0], true
	}
	return match.Pair{}, false
}

// Stitch finds b's displacement relative to a and composites the two.
func Stitch(ctx context.Context, acc accel.Accelerator, a, b *raster.Buffer, o Options) (*Result, error) {
	start := time.Now()

	grayA, err := a.Gray(acc)
	if err != nil {
		return nil, err
	}
	grayB, err := b.Gray(acc)
	if err != nil {
		return nil, err
	}

	pairs, err := FindPairs(ctx, grayA, grayB, o)
	if err != nil {
		return nil, err
	}
	d, err := EstimateDisplacement(pairs)
	if err != nil {
		return nil, err
	}

	var placer Placer = Rigid{}
	if o.Local {
		placer = Refined{Pairs: pairs, Axis: o.Axis}
	}
	img, err := Composite(acc, a, b, d, o.Axis, placer)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"axis":         o.Axis,
		"pairs":        len(pairs),
		"displacement": fmt.Sprintf("(%.2f, %.2f)", d.X, d.Y),
		"elapsed":      time.Since(start),
	}).Info("stitched")
	return &Result{Image: img, Displacement: d, Pairs: pairs}, nil
}

// LeftRight stitches right onto the right-hand edge of left.
func LeftRight(ctx context.Context, acc accel.Accelerator, left, right *raster.Buffer, o Options) (*Result, error) {
	o.Axis = features.Horizontal
	return Stitch(ctx, acc, left, right, o)
}

// TopBottom stitches bottom below top.
func TopBottom(ctx context.Context, acc accel.Accelerator, top, bottom *raster.Buffer, o Options) (*Result, error) {
	o.Axis = features.Vertical
	return Stitch(ctx, acc, top, bottom, o)
}
