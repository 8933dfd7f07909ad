package reducer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// CellFunc processes one cell of one layer during a dispatch.
type CellFunc func(layer, row, col int) error

// Dispatch runs fn over every (layer, row, col) cell, partitioning rows
// into TileSize-wide bands and running one goroutine per band through an
// errgroup.Group — the CPU analogue of spec §4.4's 2-D tile grid. Bands
// write disjoint rows of θ_back and R, so no synchronization is needed
// beyond errgroup's own join at the end of the dispatch; the first error
// from any goroutine cancels the shared context and is returned.
func Dispatch(ctx context.Context, layers, rows, cols int, fn CellFunc) error {
	g, gctx := errgroup.WithContext(ctx)
	for layer := 0; layer < layers; layer++ {
		layer := layer
		for rowStart := 0; rowStart < rows; rowStart += TileSize {
			rowStart := rowStart
			rowEnd := rowStart + TileSize
			if rowEnd > rows {
				rowEnd = rows
			}
			g.Go(func() error {
				for row := rowStart; row < rowEnd; row++ {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
					for col := 0; col < cols; col++ {
						if err := fn(layer, row, col); err != nil {
							return fmt.Errorf("reducer: Dispatch(layer=%d,row=%d,col=%d): %w", layer, row, col, err)
						}
					}
				}
				return nil
			})
		}
	}
	return g.Wait()
}
