// Package rastercache maintains an RGBA texture atlas of
// software-rasterized icons keyed by RasterKey, bounded in work per
// frame and safe under concurrent access from multiple render
// threads.
//
// The cache owns a single coarse mutex protecting the entry map, the
// atlas pixel buffer, the rasterization scratch buffer, the per-frame
// budget counter, and the deferred-work flag. It never grows its
// rasterization scratch buffer after construction; only the atlas
// itself grows, by doubling, when a reservation does not fit.
//
// The platform rasterizer is injected as a Backend at construction
// time rather than baked into the cache's public interface, so a
// deterministic test double can substitute for CoreGraphics, Cairo, or
// Canvas2D in CI.
package rastercache
