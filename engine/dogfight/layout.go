package dogfight

// Layout describes the screen the dogfight windows are tiled on
type Layout struct {
	ScreenW, ScreenH int
	WindowW, WindowH int
	IconW, IconH     int
	DX, DY           int
}

// DefaultLayout is the 320x200 screen with 160x96 windows
func DefaultLayout() Layout {
	return Layout{
		ScreenW: 320, ScreenH: 200,
		WindowW: 160, WindowH: 96,
		IconW: 32, IconH: 16,
	}
}

// Rect is a screen rectangle
type Rect struct {
	X, Y, W, H int
}

// Overlaps reports whether two rectangles share any pixel
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// WindowPosition tiles count windows so none overlap; index is 0-based.
// One window sits centred, two stack top and bottom, three put one on top
// and two in the bottom corners, four take the corners. Counts above four
// wrap the index onto the four-window tiling.
func WindowPosition(index, count int, l Layout) (x, y int) {
	if count < 1 {
		count = 1
	}
	if count > 4 {
		count = 4
		index %= 4
	}
	if index < 0 {
		index = 0
	}
	left, centre, right := 0, (l.ScreenW-l.WindowW)/2, l.ScreenW-l.WindowW
	top, bottom := 0, l.ScreenH-l.WindowH

	switch count {
	case 1:
		x, y = centre, 52
		if y+l.WindowH > l.ScreenH {
			y = (l.ScreenH - l.WindowH) / 2
		}
	case 2:
		x = centre
		if index == 0 {
			y = top
		} else {
			y = bottom
		}
	case 3:
		switch index {
		case 0:
			x, y = centre, top
		case 1:
			x, y = left, bottom
		default:
			x, y = right, bottom
		}
	default:
		switch index {
		case 0:
			x, y = left, top
		case 1:
			x, y = right, top
		case 2:
			x, y = left, bottom
		default:
			x, y = right, bottom
		}
	}
	return x + l.DX, y + l.DY
}

// MinimizedIconPosition places minimized icons down the left edge
func MinimizedIconPosition(index int, l Layout) (x, y int) {
	if index < 0 {
		index = 0
	}
	return 5 + l.DX, 5*(index+1) + l.IconH*index + l.DY
}

// Button is a clickable region of a dogfight window, relative to its origin
type Button struct {
	Cmd   Command
	Label string
	Rect  Rect
}

var windowButtons = []Button{
	{CmdStandoff, "STANDOFF", Rect{83, 4, 36, 15}},
	{CmdCautious, "CAUTIOUS", Rect{83, 20, 36, 15}},
	{CmdStandard, "STANDARD", Rect{83, 36, 36, 15}},
	{CmdAggressive, "AGGRESSIVE", Rect{83, 52, 36, 15}},
	{CmdDisengage, "DISENGAGE", Rect{83, 68, 36, 15}},
	{CmdToggleUfoPreview, "UFO", Rect{120, 52, 36, 17}},
	{CmdMinimize, "_", Rect{148, 0, 12, 12}},
	{CmdToggleWeapon1, "", Rect{4, 52, 15, 17}},
	{CmdToggleWeapon2, "", Rect{64, 52, 15, 17}},
}

// WindowButtons returns the button regions of a maximized window
func WindowButtons() []Button {
	out := make([]Button, len(windowButtons))
	copy(out, windowButtons)
	return out
}

func (r Rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ButtonAt maps a click in screen coordinates to the command it issues.
// A minimized window only answers on its icon, and an open UFO preview
// swallows every click inside the window to close itself.
func (d *Dogfight) ButtonAt(mx, my int) (Command, bool) {
	if d.end {
		return CmdNone, false
	}
	if d.minimized {
		if d.IconRect().contains(mx, my) {
			return CmdRestore, true
		}
		return CmdNone, false
	}
	win := d.WindowRect()
	if !win.contains(mx, my) {
		return CmdNone, false
	}
	if d.previewVisible {
		return CmdToggleUfoPreview, true
	}
	lx, ly := mx-win.X, my-win.Y
	for _, b := range windowButtons {
		if b.Rect.contains(lx, ly) {
			if (b.Cmd == CmdToggleWeapon1 && d.craft.Weapon(0) == nil) ||
				(b.Cmd == CmdToggleWeapon2 && d.craft.Weapon(1) == nil) {
				return CmdNone, false
			}
			return b.Cmd, true
		}
	}
	return CmdNone, false
}
