package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/mandala/pkg/cache"
	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/layout"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/observability"
	"github.com/matzehuels/mandala/pkg/store"
)

// Runner executes exports with caching. It holds no per-export state, so
// one Runner may serve concurrent exports.
type Runner struct {
	Source store.Source
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil keyer
// uses the default keyer. src may be nil when only [Runner.Export] is used.
func NewRunner(src store.Source, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Source: src,
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute loads the document named by opts.ID and exports it.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if r.Source == nil {
		return nil, errors.New(errors.ErrCodeInternal, "runner has no document source")
	}
	if err := errors.ValidateID(opts.ID); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.ID)
	start := time.Now()
	m, err := r.Source.Load(ctx, opts.ID)
	loadTime := time.Since(start)
	count := 0
	if m != nil {
		count = itemCount(m)
	}
	hooks.OnLoadComplete(ctx, opts.ID, count, loadTime, err)
	if err != nil {
		return nil, err
	}
	r.logger(opts).Debug("loaded mandala", "id", m.ID, "items", count, "duration", loadTime)

	result, err := r.Export(ctx, m, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime
	return result, nil
}

// Export lays out m once and renders every requested format concurrently.
// Cached scenes and artifacts are reused unless opts.Refresh is set. Log
// output goes to opts.Logger, or to the runner's logger when it is nil.
func (r *Runner) Export(ctx context.Context, m *mandala.Mandala, opts Options) (*Result, error) {
	opts.Logger = r.logger(opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	m = m.Clone()
	m.Normalize()

	docHash, err := cache.HashJSON(m)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash document")
	}
	result := &Result{
		Mandala:   m,
		DocHash:   docHash,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}
	result.Stats.ItemCount = itemCount(m)

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, m.ID, result.Stats.ItemCount)
	start := time.Now()
	result.Scene, result.CacheInfo.SceneHit = r.sceneCached(ctx, m, docHash, opts)
	result.Stats.LayoutTime = time.Since(start)
	hooks.OnLayoutComplete(ctx, m.ID, result.Stats.LayoutTime, nil)
	opts.Logger.Debug("built scene",
		"items", len(result.Scene.Items),
		"cached", result.CacheInfo.SceneHit,
		"duration", result.Stats.LayoutTime)

	hooks.OnRenderStart(ctx, opts.Formats)
	start = time.Now()
	artifacts := make([][]byte, len(opts.Formats))
	hits := make([]bool, len(opts.Formats))

	g, gctx := errgroup.WithContext(ctx)
	for i, format := range opts.Formats {
		g.Go(func() error {
			data, hit, err := r.renderCached(gctx, result, format, opts)
			if err != nil {
				code := errors.GetCode(err)
				if code == "" {
					code = errors.ErrCodeInternal
				}
				return errors.Wrap(code, err, "render %s", format)
			}
			artifacts[i], hits[i] = data, hit
			return nil
		})
	}
	err = g.Wait()
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	for i, format := range opts.Formats {
		result.Artifacts[format] = artifacts[i]
		if hits[i] {
			result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
		}
	}
	opts.Logger.Info("exported mandala",
		"id", m.ID,
		"formats", opts.Formats,
		"cached", len(result.CacheInfo.Hits),
		"duration", result.Stats.RenderTime)
	return result, nil
}

// logger returns the logger of one export.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// sceneCached returns the scene of m, from the cache when possible. A
// cached scene that fails to decode is rebuilt.
func (r *Runner) sceneCached(ctx context.Context, m *mandala.Mandala, docHash string, opts Options) (*layout.Scene, bool) {
	key := r.Keyer.SceneKey(docHash, opts.sceneKeyOpts())
	hooks := observability.Cache()

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			opts.Logger.Warn("scene cache read failed", "error", err)
		case hit:
			var s layout.Scene
			if err := json.Unmarshal(data, &s); err == nil {
				hooks.OnCacheHit(ctx, "scene")
				return &s, true
			}
			opts.Logger.Warn("cached scene is corrupt", "key", key)
		}
		hooks.OnCacheMiss(ctx, "scene")
	}

	s := BuildScene(m, opts)
	data, err := json.Marshal(s)
	if err != nil {
		return s, false
	}
	if err := r.Cache.Set(ctx, key, data, cache.SceneTTL); err != nil {
		opts.Logger.Warn("scene cache write failed", "error", err)
	} else {
		hooks.OnCacheSet(ctx, "scene", len(data))
	}
	return s, false
}

func (r *Runner) renderCached(ctx context.Context, res *Result, format string, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(res.DocHash, opts.artifactKeyOpts(format))
	hooks := observability.Cache()

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("cache read failed", "format", format, "error", err)
		} else if hit {
			hooks.OnCacheHit(ctx, format)
			return data, true, nil
		}
		hooks.OnCacheMiss(ctx, format)
	}

	data, err := RenderFormat(ctx, res.Mandala, res.Scene, format, opts)
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
		opts.Logger.Warn("cache write failed", "format", format, "error", err)
	} else {
		hooks.OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func itemCount(m *mandala.Mandala) int {
	var count func([]mandala.Note) int
	count = func(notes []mandala.Note) int {
		n := len(notes)
		for _, note := range notes {
			n += count(note.Children)
		}
		return n
	}
	return count(m.Notes) + len(m.Characters) + len(m.Images)
}
