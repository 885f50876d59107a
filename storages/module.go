package storages

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/logs"
)

type Module struct {
	dscope.Module
	Configs intconfigs.Module
	Logs    logs.Module
}

// OpenCache opens the configured run cache. It returns nil when no cache
// path is configured.
type OpenCache func(ctx context.Context) (*Cache, error)

func (Module) OpenCache(
	path intconfigs.CachePath,
	logger logs.Logger,
) OpenCache {
	return func(ctx context.Context) (*Cache, error) {
		if path == "" {
			return nil, nil
		}
		cache, err := Open(ctx, string(path))
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "run cache opened",
			"path", path,
		)
		return cache, nil
	}
}
