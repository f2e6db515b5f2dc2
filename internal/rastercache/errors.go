package rastercache

import "errors"

// Local sentinels, distinct in identity from the root package's
// same-named errors to avoid an import cycle; the root facade
// translates these at its boundary.
var (
	ErrRasterizationDeferred = errors.New("rastercache: per-frame rasterization budget exhausted")
	ErrIconTooLarge          = errors.New("rastercache: icon does not fit even after growth and a full clear")
	ErrBufferTooSmall        = errors.New("rastercache: scratch buffer too small for requested device size")
	ErrGraphicsError         = errors.New("rastercache: platform rasterizer failed")
)
