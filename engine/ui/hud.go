// Package ui draws the interactive chrome over the geoscape: the
// interception status bar and the buttons of every dogfight window.
package ui

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/geoscape/engine/dogfight"
	"github.com/1siamBot/geoscape/engine/geoscape"
	"github.com/1siamBot/geoscape/engine/rules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	buttonFill    = color.RGBA{50, 50, 80, 255}
	buttonActive  = color.RGBA{100, 100, 200, 255}
	buttonHover   = color.RGBA{70, 70, 120, 255}
	buttonBorder  = color.RGBA{150, 150, 200, 255}
	weaponOn      = color.RGBA{60, 140, 60, 255}
	weaponOff     = color.RGBA{120, 40, 40, 255}
	topBarFill    = color.RGBA{0, 0, 0, 180}
	crashSiteMark = color.RGBA{255, 120, 0, 255}
)

// HUD is the heads-up display for running interceptions
type HUD struct {
	ScreenW, ScreenH int
	TopBarHeight     int

	// Paused is shown in the status bar
	Paused bool
	// Focus is the window slot that receives keyboard commands
	Focus  int
}

func NewHUD(sw, sh int) *HUD {
	return &HUD{
		ScreenW:      sw,
		ScreenH:      sh,
		TopBarHeight: 12,
	}
}

// Draw renders the HUD; mx, my is the cursor for hover highlights
func (h *HUD) Draw(screen *ebiten.Image, in *geoscape.Interceptions, mx, my int) {
	for i, d := range in.Active() {
		if d.Minimized() {
			continue
		}
		h.drawButtons(screen, d, mx, my)
		if i == h.Focus {
			win := d.WindowRect()
			vector.StrokeRect(screen, float32(win.X)-1, float32(win.Y)-1, float32(win.W)+2, float32(win.H)+2, 1, buttonActive, false)
		}
	}
	h.drawTopBar(screen, in)
}

func (h *HUD) drawTopBar(screen *ebiten.Image, in *geoscape.Interceptions) {
	y := float32(h.ScreenH - h.TopBarHeight)
	vector.DrawFilledRect(screen, 0, y, float32(h.ScreenW), float32(h.TopBarHeight), topBarFill, false)
	info := fmt.Sprintf("INTERCEPTIONS %d/%d  SCORE %d  CRASH SITES %d",
		in.Len(), rules.MaxInterceptions, in.Score(), len(in.CrashSites()))
	if h.Paused {
		info += "  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, info, 2, int(y)-2)
	if n := len(in.CrashSites()); n > 0 {
		vector.DrawFilledRect(screen, float32(h.ScreenW-6), y+3, 4, 4, crashSiteMark, false)
	}
}

func (h *HUD) drawButtons(screen *ebiten.Image, d *dogfight.Dogfight, mx, my int) {
	if d.PreviewVisible() {
		return
	}
	win := d.WindowRect()
	active := modeCommand(d.Mode())
	for _, b := range dogfight.WindowButtons() {
		x, y := float32(win.X+b.Rect.X), float32(win.Y+b.Rect.Y)
		w, ht := float32(b.Rect.W), float32(b.Rect.H)

		var clr color.RGBA
		switch b.Cmd {
		case dogfight.CmdToggleWeapon1, dogfight.CmdToggleWeapon2:
			slot := 0
			if b.Cmd == dogfight.CmdToggleWeapon2 {
				slot = 1
			}
			if d.Craft().Weapon(slot) == nil {
				continue
			}
			clr = weaponOff
			if d.WeaponEnabled(slot) {
				clr = weaponOn
			}
		default:
			clr = buttonFill
			if b.Cmd == active {
				clr = buttonActive
			} else if cmd, ok := d.ButtonAt(mx, my); ok && cmd == b.Cmd {
				clr = buttonHover
			}
		}
		vector.DrawFilledRect(screen, x, y, w, ht, clr, false)
		vector.StrokeRect(screen, x, y, w, ht, 1, buttonBorder, false)
		if b.Label != "" {
			ebitenutil.DebugPrintAt(screen, shortLabel(b.Label), int(x)+2, int(y))
		}
	}
}

func modeCommand(m dogfight.Mode) dogfight.Command {
	switch m {
	case dogfight.ModeStandoff:
		return dogfight.CmdStandoff
	case dogfight.ModeCautious:
		return dogfight.CmdCautious
	case dogfight.ModeStandard:
		return dogfight.CmdStandard
	case dogfight.ModeAggressive:
		return dogfight.CmdAggressive
	case dogfight.ModeDisengage:
		return dogfight.CmdDisengage
	}
	return dogfight.CmdNone
}

// the debug font is 6px wide; five letters fill a mode button
func shortLabel(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
