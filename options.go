package gooey

// ParserOption configures a Parser during construction.
type ParserOption func(*parserOptions)

type parserOptions struct {
	maxVertices int
}

func defaultParserOptions() parserOptions {
	return parserOptions{maxVertices: DefaultMaxPathVertices}
}

// WithMaxPathVertices overrides the vertex capacity of polygons produced
// by flattening. Sizes the parser's flattened-point and polygon-slice
// buffers; a Triangulator is sized separately, by
// WithTriangulatorMaxVertices.
func WithMaxPathVertices(n int) ParserOption {
	return func(o *parserOptions) {
		if n > 0 {
			o.maxVertices = n
		}
	}
}

// StrokeOption configures a StrokeExpander during construction.
type StrokeOption func(*strokeOptions)

type strokeOptions struct {
	maxInput      int
	maxOutput     int
	roundSegments int
}

func defaultStrokeOptions() strokeOptions {
	return strokeOptions{
		maxInput:      DefaultMaxStrokeInput,
		maxOutput:     DefaultMaxStrokeOutput,
		roundSegments: DefaultRoundSegments,
	}
}

// WithMaxStrokeInput overrides the maximum polyline length the expander accepts.
func WithMaxStrokeInput(n int) StrokeOption {
	return func(o *strokeOptions) {
		if n > 0 {
			o.maxInput = n
		}
	}
}

// WithMaxStrokeOutput overrides the maximum outline/triangle-mesh vertex
// count the expander emits.
func WithMaxStrokeOutput(n int) StrokeOption {
	return func(o *strokeOptions) {
		if n > 0 {
			o.maxOutput = n
		}
	}
}

// WithRoundSegments overrides the subdivision count for round caps and joins.
func WithRoundSegments(n int) StrokeOption {
	return func(o *strokeOptions) {
		if n >= 4 {
			o.roundSegments = n
		}
	}
}

// TriangulateOption configures a Triangulator during construction.
type TriangulateOption func(*triangulateOptions)

type triangulateOptions struct {
	maxVertices int
}

func defaultTriangulateOptions() triangulateOptions {
	return triangulateOptions{maxVertices: DefaultMaxPathVertices}
}

// WithTriangulatorMaxVertices overrides the vertex capacity of polygons
// the triangulator accepts.
func WithTriangulatorMaxVertices(n int) TriangulateOption {
	return func(o *triangulateOptions) {
		if n > 0 {
			o.maxVertices = n
		}
	}
}

// CacheOption configures a RasterCache during construction.
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	initialAtlasSize          int
	maxAtlasSize              int
	scratchSize               int
	maxRasterizationsPerFrame int
}

func defaultCacheOptions() cacheOptions {
	return cacheOptions{
		initialAtlasSize:          256,
		maxAtlasSize:              2048,
		scratchSize:               128,
		maxRasterizationsPerFrame: DefaultMaxRasterizationsPerFrame,
	}
}

// WithCacheCapacity overrides the atlas's initial side length in
// pixels. The atlas grows (doubling, up to a fixed cap) as needed; a
// larger starting size simply avoids early growth events.
func WithCacheCapacity(n int) CacheOption {
	return func(o *cacheOptions) {
		if n > 0 {
			o.initialAtlasSize = n
		}
	}
}

// WithMaxRasterizationsPerFrame overrides the per-frame rasterization
// work budget before the cache defers further work.
func WithMaxRasterizationsPerFrame(n int) CacheOption {
	return func(o *cacheOptions) {
		if n > 0 {
			o.maxRasterizationsPerFrame = n
		}
	}
}
