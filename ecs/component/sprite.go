package component

import (
	"image/color"

	"github.com/milk9111/shapeshift/assets"
)

// Sprite is the rendering state of a sheet-backed entity. The renderer reads
// it; gameplay systems write Frame, Sheet, FacingLeft and Tint.
type Sprite struct {
	Sheet      *assets.Handle
	Grid       assets.SheetGrid
	Frame      int
	FacingLeft bool
	Tint       color.Color
}
