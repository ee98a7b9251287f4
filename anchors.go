// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package wallpaper

// Position is a point in normalized image coordinates. Both components are
// nominally in [-1, 1] with (0, 0) the center of the image and +Y pointing
// up, the opposite of pixel rows which grow downward. Values outside
// [-1, 1] are accepted and extrapolate linearly beyond the image bounds,
// which allows anchoring off canvas.
type Position struct {
	X, Y float64
}

// Named anchors for the common alignment points of an image.
var (
	Center      = Position{0, 0}
	Top         = Position{0, 1}
	Bottom      = Position{0, -1}
	Left        = Position{-1, 0}
	Right       = Position{1, 0}
	TopLeft     = Position{-1, 1}
	TopRight    = Position{1, 1}
	BottomLeft  = Position{-1, -1}
	BottomRight = Position{1, -1}
)

// Anchors maps the anchor names accepted on the command line to the
// corresponding Position. Initialized once, read-only afterwards.
var Anchors = map[string]Position{
	"center":       Center,
	"top":          Top,
	"bottom":       Bottom,
	"left":         Left,
	"right":        Right,
	"top-left":     TopLeft,
	"top-right":    TopRight,
	"bottom-left":  BottomLeft,
	"bottom-right": BottomRight,
}
