package meanfield

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/wavefold/kuramoto/field"
)

// TreeReduce computes Z for one layer of view by splitting its rows across
// workers goroutines, each accumulating a local partial sum of cos θ and
// sin θ with gonum's floats.Sum, then combining the partial sums — a tree
// reduction in two levels, matching the shape the out-of-scope GPU shader
// is described as computing (spec §1). workers <= 0 is treated as 1.
func TreeReduce(ctx context.Context, view field.ThetaView, layer, workers int) (Z, error) {
	rows, cols := view.Rows(), view.Cols()
	if rows == 0 || cols == 0 {
		return Z{}, nil
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (rows + workers - 1) / workers

	partialCos := make([]float64, workers)
	partialSin := make([]float64, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= rows {
			break
		}
		end := start + chunk
		if end > rows {
			end = rows
		}
		w, start, end := w, start, end
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			cosVals := make([]float64, 0, (end-start)*cols)
			sinVals := make([]float64, 0, (end-start)*cols)
			for r := start; r < end; r++ {
				for c := 0; c < cols; c++ {
					th, err := view.At(layer, r, c)
					if err != nil {
						return fmt.Errorf("meanfield: TreeReduce: %w", err)
					}
					cosVals = append(cosVals, math.Cos(float64(th)))
					sinVals = append(sinVals, math.Sin(float64(th)))
				}
			}
			partialCos[w] = floats.Sum(cosVals)
			partialSin[w] = floats.Sum(sinVals)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Z{}, err
	}
	total := float64(rows * cols)
	return Z{
		CosAvg: float32(floats.Sum(partialCos) / total),
		SinAvg: float32(floats.Sum(partialSin) / total),
	}, nil
}
