// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package wallpaper

import (
	"fmt"
	"image"
)

// Mode selects one of the four placement policies. The set is closed,
// dispatch happens in Compose.
type Mode int

const (
	StretchMode Mode = iota
	ScaleMode
	ShiftMode
	TileMode
)

func (m Mode) String() string {
	switch m {
	case StretchMode:
		return "stretch"
	case ScaleMode:
		return "scale"
	case ShiftMode:
		return "shift"
	case TileMode:
		return "tile"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ModeFromString parses the mode names used on the command line.
func ModeFromString(name string) (Mode, error) {
	switch name {
	case "stretch":
		return StretchMode, nil
	case "scale":
		return ScaleMode, nil
	case "shift":
		return ShiftMode, nil
	case "tile":
		return TileMode, nil
	}
	return 0, fmt.Errorf("unknown wallpaper mode: %#v", name)
}

// Compose dispatches to the placement function for mode. The anchor
// positions are ignored by Stretch and Scale which take no positioning
// parameters.
func Compose(mode Mode, background, foreground image.Image, background_pos, foreground_pos Position) (*image.NRGBA, error) {
	switch mode {
	case StretchMode:
		return Stretch(background, foreground)
	case ScaleMode:
		return Scale(background, foreground)
	case ShiftMode:
		return Shift(background, foreground, background_pos, foreground_pos)
	case TileMode:
		return Tile(background, foreground, background_pos, foreground_pos)
	}
	return nil, fmt.Errorf("unknown wallpaper mode: %s", mode)
}
