package gooey

import "github.com/duanebester/gooey-sub002/internal/rastercache"

// Backend is the capability a platform rasterizer must provide to back
// a RasterCache. CoreGraphics, Cairo, Canvas2D, and a deterministic
// test double are all valid implementations.
//
// Rasterize must write its RGBA8 output tightly packed, row-major,
// starting at scratch[0] — width*4 bytes per row — regardless of
// scratch's total capacity; the returned RasterizedResult tells the
// cache how many of those rows and columns to read back.
type Backend = rastercache.Backend

// StrokeOptions carries the subset of stroke parameters a Backend
// needs to rasterize a stroked icon.
type StrokeOptions = rastercache.StrokeOptions

// RasterizedResult is what a Backend returns for a successful
// rasterization.
type RasterizedResult = rastercache.RasterizedResult

// RasterKey identifies one rasterized icon variant. All float inputs
// are quantized at construction so two keys built from the same
// logical inputs compare bitwise equal.
type RasterKey = rastercache.RasterKey

// NewRasterKey builds a RasterKey from the logical parameters of a
// rasterization request. hasStroke distinguishes "unstroked" from "a
// zero-width stroke", which compare as different keys.
func NewRasterKey(pathHash uint64, logicalWidth, logicalHeight, scaleFactor float32, hasFill, hasStroke bool, strokeWidth float32) RasterKey {
	return rastercache.NewRasterKey(pathHash, logicalWidth, logicalHeight, scaleFactor, hasFill, hasStroke, strokeWidth)
}

// AtlasSlot locates one rasterized icon within the atlas.
type AtlasSlot = rastercache.AtlasSlot

// RasterCache maintains an RGBA texture atlas of software-rasterized
// icons keyed by RasterKey, bounded in work per frame, safe under
// concurrent access from multiple render threads.
type RasterCache struct {
	inner *rastercache.Cache
}

// NewRasterCache allocates a RasterCache backed by backend. See
// WithCacheCapacity and WithMaxRasterizationsPerFrame for its sizing
// options.
func NewRasterCache(backend Backend, opts ...CacheOption) *RasterCache {
	o := defaultCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := rastercache.NewCache(backend, uint32(o.initialAtlasSize), uint32(o.maxAtlasSize), uint32(o.scratchSize), o.maxRasterizationsPerFrame)
	c.SetLogger(Logger())
	return &RasterCache{inner: c}
}

// GetOrRasterize returns the AtlasSlot for key, rasterizing via the
// backend on a miss. pathData, viewbox, logicalSize, hasFill, and
// stroke are only consulted on a miss.
func (c *RasterCache) GetOrRasterize(key RasterKey, pathData []byte, viewbox [4]float32, logicalSize [2]float32, hasFill bool, stroke StrokeOptions) (AtlasSlot, error) {
	slot, err := c.inner.GetOrRasterize(key, pathData, viewbox, logicalSize, hasFill, stroke)
	if err != nil {
		return AtlasSlot{}, translateCacheError(err)
	}
	return slot, nil
}

// ResetFrameBudget must be called at the start of every frame by the
// host render loop; it clears the rasterization counter and the
// deferred-work flag.
func (c *RasterCache) ResetFrameBudget() { c.inner.ResetFrameBudget() }

// HasDeferredWork reports whether a rasterization was deferred this
// frame due to the per-frame work budget.
func (c *RasterCache) HasDeferredWork() bool { return c.inner.HasDeferredWork() }

// SetScaleFactor updates the device-pixel ratio. Since device sizes
// are embedded in every RasterKey and AtlasSlot, a scale change
// invalidates the entire cache.
func (c *RasterCache) SetScaleFactor(f float32) { c.inner.SetScaleFactor(f) }

// WithAtlasLocked runs fn with the cache's mutex held, handing it the
// live atlas buffer and current atlas size. Callers (e.g. a GPU upload
// pass scanning the whole atlas) must not retain the slice past fn's
// return.
func (c *RasterCache) WithAtlasLocked(fn func(atlas []byte, atlasSize uint32)) {
	c.inner.WithAtlasLocked(fn)
}

func translateCacheError(err error) error {
	switch err {
	case rastercache.ErrRasterizationDeferred:
		return ErrRasterizationDeferred
	case rastercache.ErrIconTooLarge:
		return ErrIconTooLarge
	case rastercache.ErrBufferTooSmall:
		return ErrBufferTooSmall
	case rastercache.ErrGraphicsError:
		return ErrGraphicsError
	default:
		return err
	}
}
