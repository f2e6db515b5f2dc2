package rastercache

import "sync"

const bytesPerPixel = 4

// Cache is a thread-safe atlas cache of rasterized icons. The mutex
// protects every piece of shared state: the entry map, the atlas
// buffer, the scratch buffer, the packer cursor, the per-frame
// counter, and the deferred-work flag.
type Cache struct {
	mu sync.Mutex

	backend Backend
	logger  Logger

	entries map[RasterKey]AtlasSlot

	atlas        []byte
	atlasSize    uint32
	maxAtlasSize uint32
	cursorX      uint32
	cursorY      uint32
	rowHeight    uint32

	scratch     []byte
	scratchSize uint32

	rasterizationsThisFrame   int
	maxRasterizationsPerFrame int
	deferredWork              bool

	scaleFactor float32
}

// NewCache allocates a Cache with an initial square atlas of
// initialAtlasSize pixels per side, growable up to maxAtlasSize, a
// scratch buffer able to hold scratchSize x scratchSize RGBA pixels,
// and the given per-frame rasterization budget.
func NewCache(backend Backend, initialAtlasSize, maxAtlasSize, scratchSize uint32, maxRasterizationsPerFrame int) *Cache {
	return &Cache{
		backend:                   backend,
		logger:                    nopLogger{},
		entries:                   make(map[RasterKey]AtlasSlot),
		atlas:                     make([]byte, int(initialAtlasSize)*int(initialAtlasSize)*bytesPerPixel),
		atlasSize:                 initialAtlasSize,
		maxAtlasSize:              maxAtlasSize,
		scratch:                   make([]byte, int(scratchSize)*int(scratchSize)*bytesPerPixel),
		scratchSize:               scratchSize,
		maxRasterizationsPerFrame: maxRasterizationsPerFrame,
		scaleFactor:               1,
	}
}

// SetLogger installs l for deferred-work and atlas-growth diagnostics.
// A nil l restores the silent default.
func (c *Cache) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l == nil {
		l = nopLogger{}
	}
	c.logger = l
}

// GetOrRasterize returns the AtlasSlot for key, rasterizing via the
// backend on a miss. pathData, viewbox, logicalSize, hasFill, and
// stroke are only consulted on a miss.
func (c *Cache) GetOrRasterize(key RasterKey, pathData []byte, viewbox [4]float32, logicalSize [2]float32, hasFill bool, stroke StrokeOptions) (AtlasSlot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if slot, ok := c.entries[key]; ok {
		return slot, nil
	}

	if c.rasterizationsThisFrame >= c.maxRasterizationsPerFrame {
		c.deferredWork = true
		c.logger.Debug("rasterization deferred, frame budget exhausted", "budget", c.maxRasterizationsPerFrame)
		return AtlasSlot{}, ErrRasterizationDeferred
	}

	deviceW := uint32(logicalSize[0] * c.scaleFactor)
	deviceH := uint32(logicalSize[1] * c.scaleFactor)
	if deviceW > c.scratchSize || deviceH > c.scratchSize {
		return AtlasSlot{}, ErrBufferTooSmall
	}

	zero(c.scratch)
	result, err := c.backend.Rasterize(pathData, viewbox, [2]uint32{deviceW, deviceH}, c.scratch, hasFill, stroke)
	c.rasterizationsThisFrame++
	if err != nil {
		return AtlasSlot{}, ErrGraphicsError
	}

	x, y, ok := c.reserve(result.Width, result.Height)
	if !ok {
		if c.grow() {
			c.logger.Debug("atlas grown", "size", c.atlasSize, "entries", len(c.entries))
			x, y, ok = c.reserve(result.Width, result.Height)
		}
		if !ok {
			c.logger.Warn("atlas exhausted, clearing cache and retrying", "size", c.atlasSize, "entries", len(c.entries))
			c.clearAll()
			x, y, ok = c.reserve(result.Width, result.Height)
			if !ok {
				return AtlasSlot{}, ErrIconTooLarge
			}
		}
	}

	c.blit(x, y, result.Width, result.Height)

	slot := AtlasSlot{
		X: x, Y: y,
		Width: result.Width, Height: result.Height,
		AtlasSize: c.atlasSize,
		OffsetX:   result.OffsetX,
		OffsetY:   result.OffsetY,
	}
	c.entries[key] = slot
	return slot, nil
}

// ResetFrameBudget must be called at the start of every frame by the
// host render loop; it clears the counter and the deferred flag.
func (c *Cache) ResetFrameBudget() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rasterizationsThisFrame = 0
	c.deferredWork = false
}

func (c *Cache) HasDeferredWork() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deferredWork
}

// SetScaleFactor updates the device-pixel ratio. Since device sizes
// are embedded in every RasterKey and AtlasSlot, a scale change
// invalidates the entire cache.
func (c *Cache) SetScaleFactor(f float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f == c.scaleFactor {
		return
	}
	c.scaleFactor = f
	c.clearAll()
}

// WithAtlasLocked runs fn with the cache's mutex held, handing it the
// live atlas buffer and current atlas size. Callers (e.g. a GPU upload
// pass scanning the whole atlas) must not retain the slice past fn's
// return.
func (c *Cache) WithAtlasLocked(fn func(atlas []byte, atlasSize uint32)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.atlas, c.atlasSize)
}

// reserve finds space for a w x h region using a row-shelf packer:
// regions are placed left to right, wrapping to a new row (sized by
// the tallest region placed so far in the current row) when a row
// fills.
func (c *Cache) reserve(w, h uint32) (x, y uint32, ok bool) {
	if w > c.atlasSize || h > c.atlasSize {
		return 0, 0, false
	}
	if c.cursorX+w > c.atlasSize {
		c.cursorX = 0
		c.cursorY += c.rowHeight
		c.rowHeight = 0
	}
	if c.cursorY+h > c.atlasSize {
		return 0, 0, false
	}
	x, y = c.cursorX, c.cursorY
	c.cursorX += w
	if h > c.rowHeight {
		c.rowHeight = h
	}
	return x, y, true
}

// grow doubles the atlas, up to maxAtlasSize, copying existing pixel
// content into the top-left of the new buffer and re-stamping every
// slot's captured AtlasSize to match. Returns false if already at the
// cap.
func (c *Cache) grow() bool {
	newSize := c.atlasSize * 2
	if newSize > c.maxAtlasSize {
		newSize = c.maxAtlasSize
	}
	if newSize <= c.atlasSize {
		return false
	}

	newAtlas := make([]byte, int(newSize)*int(newSize)*bytesPerPixel)
	oldStride := int(c.atlasSize) * bytesPerPixel
	newStride := int(newSize) * bytesPerPixel
	for row := uint32(0); row < c.atlasSize; row++ {
		srcOff := int(row) * oldStride
		dstOff := int(row) * newStride
		copy(newAtlas[dstOff:dstOff+oldStride], c.atlas[srcOff:srcOff+oldStride])
	}
	c.atlas = newAtlas
	c.atlasSize = newSize

	for k, slot := range c.entries {
		slot.AtlasSize = newSize
		c.entries[k] = slot
	}
	return true
}

// clearAll discards every cached slot and the packer's cursor state,
// returning the atlas to fully available (but keeping its current
// dimensions).
func (c *Cache) clearAll() {
	c.entries = make(map[RasterKey]AtlasSlot)
	zero(c.atlas)
	c.cursorX = 0
	c.cursorY = 0
	c.rowHeight = 0
}

// blit copies a w x h RGBA region, tightly packed row-major at the
// front of the scratch buffer (the layout the Backend contract
// requires regardless of the scratch buffer's full capacity), into the
// atlas at (x,y).
func (c *Cache) blit(x, y, w, h uint32) {
	atlasStride := int(c.atlasSize) * bytesPerPixel
	rowBytes := int(w) * bytesPerPixel
	for row := uint32(0); row < h; row++ {
		srcOff := int(row) * rowBytes
		dstOff := int(y+row)*atlasStride + int(x)*bytesPerPixel
		copy(c.atlas[dstOff:dstOff+rowBytes], c.scratch[srcOff:srcOff+rowBytes])
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
