package rastercache

import "math"

// RasterKey identifies one rasterized icon variant. DeviceSize and
// StrokeWidthQ are quantized at construction so that two keys built
// from the same logical inputs compare bitwise equal, independent of
// floating-point accumulation in the caller, and so the key space
// stays bounded regardless of how many distinct logical sizes or
// scale factors a host exercises.
type RasterKey struct {
	PathHash     uint64
	DeviceSize   uint16
	HasFill      bool
	HasStroke    bool
	StrokeWidthQ uint8
}

// maxDeviceSize and maxStrokeWidthQ are the u16/u8 saturation points
// for DeviceSize and StrokeWidthQ: both quantities are clamped rather
// than overflowed so an oversized icon or stroke collapses onto the
// largest bucket instead of wrapping around to a small one.
const (
	maxDeviceSize   = 65535
	maxStrokeWidthQ = 255
)

// quantizeStrokeWidth rounds to 0.25-unit granularity
// (stroke_width_q = min(255, round(width*4))), bounding the number of
// distinct stroke-width buckets a cache entry can occupy.
func quantizeStrokeWidth(width float32) uint8 {
	q := int(math.Round(float64(width) * 4))
	if q < 0 {
		q = 0
	}
	if q > maxStrokeWidthQ {
		q = maxStrokeWidthQ
	}
	return uint8(q)
}

// quantizeDeviceSize rounds the larger of the icon's two device-pixel
// dimensions (icons in this cache are square or are bounded by their
// longer side) to the nearest integer pixel, clamped to fit a u16.
func quantizeDeviceSize(logicalWidth, logicalHeight, scaleFactor float32) uint16 {
	dim := logicalWidth
	if logicalHeight > dim {
		dim = logicalHeight
	}
	q := int(math.Round(float64(dim) * float64(scaleFactor)))
	if q < 0 {
		q = 0
	}
	if q > maxDeviceSize {
		q = maxDeviceSize
	}
	return uint16(q)
}

// NewRasterKey builds a RasterKey from the logical parameters of a
// rasterization request. hasStroke distinguishes "unstroked" from "a
// zero-width stroke", which are different keys.
func NewRasterKey(pathHash uint64, logicalWidth, logicalHeight, scaleFactor float32, hasFill bool, hasStroke bool, strokeWidth float32) RasterKey {
	var sw uint8
	if hasStroke {
		sw = quantizeStrokeWidth(strokeWidth)
	}
	return RasterKey{
		PathHash:     pathHash,
		DeviceSize:   quantizeDeviceSize(logicalWidth, logicalHeight, scaleFactor),
		HasFill:      hasFill,
		HasStroke:    hasStroke,
		StrokeWidthQ: sw,
	}
}

// AtlasSlot locates one rasterized icon within the atlas. AtlasSize is
// captured at insertion time; if the atlas grows afterward, the cache
// walks every slot and updates this field so that UV computations
// derived from it stay consistent with the current atlas.
type AtlasSlot struct {
	X, Y          uint32
	Width, Height uint32
	AtlasSize     uint32
	OffsetX       int32
	OffsetY       int32
}

// RasterizedResult is what a Backend returns for a successful
// rasterization: a tight bitmap size and its offset relative to the
// logical icon origin.
type RasterizedResult struct {
	Width, Height    uint32
	OffsetX, OffsetY int32
}

// StrokeOptions carries the subset of stroke parameters a backend
// needs to rasterize a stroked icon.
type StrokeOptions struct {
	HasStroke bool
	Width     float32
}

// Logger is the subset of *slog.Logger the cache needs to report
// deferred-work and atlas-growth diagnostics. Satisfied directly by
// *slog.Logger; defined locally so this package need not import the
// root module (which would create an import cycle).
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Backend is the capability a platform rasterizer must provide. The
// cache is generic over this single interface; CoreGraphics, Cairo,
// Canvas2D, and a deterministic test double are all valid
// implementations.
//
// Rasterize must write its RGBA8 output tightly packed, row-major,
// starting at scratch[0] — width*4 bytes per row — regardless of
// scratch's total capacity; the returned Width/Height tell the cache
// how many of those rows and columns to read back.
type Backend interface {
	Rasterize(pathData []byte, viewbox [4]float32, deviceSize [2]uint32, scratch []byte, hasFill bool, stroke StrokeOptions) (RasterizedResult, error)
}
