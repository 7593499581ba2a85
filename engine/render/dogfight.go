// Package render draws dogfight windows onto the ebiten screen.
package render

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/geoscape/engine/dogfight"
	"github.com/1siamBot/geoscape/engine/rules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	windowFill   = color.RGBA{8, 16, 40, 255}
	windowBorder = color.RGBA{90, 110, 180, 255}
	battleFill   = color.RGBA{0, 0, 0, 255}
	textColor    = color.RGBA{170, 220, 170, 255}
	beamOut      = color.RGBA{255, 80, 80, 255}
	beamIn       = color.RGBA{120, 255, 255, 255}
	rangeMark    = color.RGBA{60, 90, 60, 255}
	hullGood     = color.RGBA{0, 200, 0, 255}
	hullLow      = color.RGBA{255, 200, 0, 255}
	hullCritical = color.RGBA{255, 0, 0, 255}
	hullFlash    = color.RGBA{255, 255, 255, 255}
)

// battle is the engagement strip inside a window, relative to its origin
var battle = dogfight.Rect{X: 4, Y: 4, W: 74, H: 45}

// DogfightRenderer draws the body of dogfight windows: the engagement strip, the
// UFO and projectiles, range marks, hull bar and the preview overlay.
type DogfightRenderer struct {
	Images *ImageCache
	Font   string
}

// NewDogfightRenderer creates a window renderer that draws text in the named pack font.
func NewDogfightRenderer(images *ImageCache, font string) *DogfightRenderer {
	return &DogfightRenderer{Images: images, Font: font}
}

// Draw renders d at its window position. Minimized and ended dogfights
// draw nothing.
func (w *DogfightRenderer) Draw(screen *ebiten.Image, d *dogfight.Dogfight) {
	if d.Ended() || d.Minimized() {
		return
	}
	win := d.WindowRect()
	ox, oy := float32(win.X), float32(win.Y)

	if bg := w.Images.Surface("INTERWIN.DAT"); bg != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(win.X), float64(win.Y))
		screen.DrawImage(bg, op)
	} else {
		vector.DrawFilledRect(screen, ox, oy, float32(win.W), float32(win.H), windowFill, false)
		vector.StrokeRect(screen, ox, oy, float32(win.W), float32(win.H), 1, windowBorder, false)
	}

	if d.PreviewVisible() {
		w.drawPreview(screen, d, win)
		return
	}

	bx, by := ox+float32(battle.X), oy+float32(battle.Y)
	vector.DrawFilledRect(screen, bx, by, float32(battle.W), float32(battle.H), battleFill, false)
	w.drawRangeMarks(screen, d, win)
	w.drawUfo(screen, d, win)
	w.drawProjectiles(screen, d, win)
	w.drawHull(screen, d, win)
	w.drawText(screen, d, win)
}

// yFor maps a distance from the craft to a screen row in the strip. The
// craft sits on the bottom edge and standoff range on the top.
func yFor(win dogfight.Rect, dist int) float32 {
	if dist < 0 {
		dist = 0
	}
	if dist > rules.StandoffDist {
		dist = rules.StandoffDist
	}
	bottom := win.Y + battle.Y + battle.H - 1
	return float32(bottom - dist*(battle.H-1)/rules.StandoffDist)
}

func (w *DogfightRenderer) drawRangeMarks(screen *ebiten.Image, d *dogfight.Dogfight, win dogfight.Rect) {
	for slot := 0; slot < rules.WeaponSlots; slot++ {
		wpn := d.Craft().Weapon(slot)
		if wpn == nil {
			continue
		}
		y := yFor(win, wpn.Range())
		x := float32(win.X + battle.X + 2 + slot*(battle.W-8))
		vector.StrokeLine(screen, x, y, x+4, y, 1, rangeMark, false)
	}
}

func (w *DogfightRenderer) drawUfo(screen *ebiten.Image, d *dogfight.Dogfight, win dogfight.Rect) {
	blob := w.Images.UfoBlob(d.UfoBlobIndex())
	bw, bh := blob.Bounds().Dx(), blob.Bounds().Dy()
	cx := win.X + battle.X + battle.W/2
	cy := int(yFor(win, d.Distance()))
	if cy-bh/2 < win.Y+battle.Y {
		cy = win.Y + battle.Y + bh/2
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(cx-bw/2), float64(cy-bh/2))
	screen.DrawImage(blob, op)
}

func (w *DogfightRenderer) drawProjectiles(screen *ebiten.Image, d *dogfight.Dogfight, win dogfight.Rect) {
	cx := float32(win.X + battle.X + battle.W/2)
	craftY := yFor(win, 0)
	ufoY := yFor(win, d.Distance())
	for _, p := range d.Projectiles() {
		if p.Global == rules.Beam {
			clr := beamOut
			if p.Direction == dogfight.Incoming {
				clr = beamIn
			}
			x := cx + float32(p.Slot*4-2)
			if p.Slot < 0 {
				x = cx
			}
			vector.StrokeLine(screen, x, craftY, x, ufoY, 1, clr, false)
			continue
		}
		shot := w.Images.Shot(p.Type)
		if shot == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(cx)+float64(p.Slot*6-4), float64(yFor(win, p.Position)))
		screen.DrawImage(shot, op)
	}
}

func (w *DogfightRenderer) drawHull(screen *ebiten.Image, d *dogfight.Dogfight, win dogfight.Rect) {
	craft := d.Craft()
	maxDamage := craft.Rules.MaxDamage
	if maxDamage <= 0 {
		return
	}
	x, y := float32(win.X+124), float32(win.Y+14)
	const barW, barH = 6, 34
	ratio := float32(craft.Health()) / float32(maxDamage)
	clr := hullGood
	switch {
	case d.CraftDamageFlash():
		clr = hullFlash
	case ratio < 0.25:
		clr = hullCritical
	case ratio < 0.5:
		clr = hullLow
	}
	vector.StrokeRect(screen, x, y, barW, barH, 1, windowBorder, false)
	fill := barH * ratio
	vector.DrawFilledRect(screen, x+1, y+barH-fill, barW-2, fill, clr, false)
}

func (w *DogfightRenderer) drawText(screen *ebiten.Image, d *dogfight.Dogfight, win dogfight.Rect) {
	face := w.Images.Face(w.Font)
	for slot := 0; slot < rules.WeaponSlots; slot++ {
		wpn := d.Craft().Weapon(slot)
		if wpn == nil {
			continue
		}
		label := fmt.Sprintf("%d", wpn.Ammo())
		if !d.WeaponEnabled(slot) {
			label += " OFF"
		}
		drawString(screen, face, label, win.X+4+slot*60, win.Y+70)
	}
	drawString(screen, face, fmt.Sprintf("%d", d.Distance()), win.X+battle.X+1, win.Y+battle.Y+1)
	drawString(screen, face, d.Status(), win.X+4, win.Y+83)
}

func (w *DogfightRenderer) drawPreview(screen *ebiten.Image, d *dogfight.Dogfight, win dogfight.Rect) {
	ufo := d.Ufo()
	face := w.Images.Face(w.Font)
	blob := w.Images.UfoBlob(int(ufo.Rules.Size))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(4, 4)
	op.GeoM.Translate(float64(win.X+win.W/2-26), float64(win.Y+8))
	screen.DrawImage(blob, op)
	drawString(screen, face, ufo.Rules.Type, win.X+6, win.Y+64)
	drawString(screen, face, ufo.Rules.Size.String(), win.X+6, win.Y+78)
}

// DrawIcon renders the minimized icon of d with its distance
func (w *DogfightRenderer) DrawIcon(screen *ebiten.Image, d *dogfight.Dogfight) {
	if d.Ended() || !d.Minimized() {
		return
	}
	r := d.IconRect()
	if icon := w.Images.Frame("INTICON.PCK", 0); icon != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(r.X), float64(r.Y))
		screen.DrawImage(icon, op)
	} else {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), windowFill, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, windowBorder, false)
	}
	drawString(screen, w.Images.Face(w.Font), fmt.Sprintf("%d", d.Distance()), r.X+r.W+2, r.Y+2)
}

func drawString(screen *ebiten.Image, face text.Face, s string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, s, face, op)
}
