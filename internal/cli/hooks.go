package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/babelgraph/pkg/observability"
)

// logHooks reports engine and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.EngineHooks = (*logHooks)(nil)
	_ observability.CacheHooks  = (*logHooks)(nil)
)

func (h *logHooks) OnGenerateStart(_ context.Context, kind string, vertices int) {
	h.logger.Debug("generating", "kind", kind, "vertices", vertices)
}

func (h *logHooks) OnGenerateComplete(_ context.Context, kind string, vertices, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generate failed", "kind", kind, "err", err)
		return
	}
	h.logger.Debug("generated", "kind", kind, "vertices", vertices, "edges", edges, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("loading", "path", path)
}

func (h *logHooks) OnLoadComplete(_ context.Context, path string, vertices, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("loaded", "path", path, "vertices", vertices, "edges", edges, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnLayoutStart(_ context.Context, algorithm string, vertices int) {
	h.logger.Debug("layout", "algorithm", algorithm, "vertices", vertices)
}

func (h *logHooks) OnLayoutComplete(_ context.Context, algorithm string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("layout failed", "algorithm", algorithm, "err", err)
		return
	}
	h.logger.Debug("layout done", "algorithm", algorithm, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnAnalysisStart(_ context.Context, vertices int) {
	h.logger.Debug("analyzing", "vertices", vertices)
}

func (h *logHooks) OnAnalysisComplete(_ context.Context, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("analysis failed", "err", err)
		return
	}
	h.logger.Debug("analysis done", "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
