package plycloud

import (
	"context"
	"fmt"

	"github.com/hupe1980/plycloud/pointcloud"
	"golang.org/x/sync/errgroup"
)

// LoadAll loads paths[i] into clouds[i] with at most limit loads in
// flight (limit <= 0 means no limit). The first failure cancels the
// remaining loads and is returned.
func (pio *IO) LoadAll(ctx context.Context, paths []string, clouds []*pointcloud.Cloud, limit int) (err error) {
	if len(paths) != len(clouds) {
		return fmt.Errorf("plycloud: %d paths for %d clouds", len(paths), len(clouds))
	}
	defer func() {
		pio.logger.LogBatchLoad(ctx, len(paths), err)
	}()

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return pio.Load(gctx, paths[i], clouds[i])
		})
	}

	return g.Wait()
}
