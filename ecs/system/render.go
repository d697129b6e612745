package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	platformColor    = colornames.Slategray
	placeholderColor = colornames.Limegreen
	colliderColor    = colornames.Orangered
	sensorColor      = colornames.Gold
	backgroundColor  = color.NRGBA{R: 0x1c, G: 0x1f, B: 0x2b, A: 0xff}
)

// RenderSystem draws the world with a fixed camera. Sheets that are still
// loading are replaced by placeholders.
type RenderSystem struct {
	Debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(backgroundColor)

	for _, p := range w.Platforms() {
		vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), platformColor, false)
	}

	for _, c := range w.Collectibles() {
		r.drawCollectible(screen, c)
	}

	if player, ok := w.Player(); ok {
		r.drawPlayer(screen, player)
		if r.Debug {
			r.drawDebug(screen, w, player)
		}
	}
}

func (r *RenderSystem) drawCollectible(screen *ebiten.Image, c *ecs.CollectibleEntity) {
	img := c.Texture.Image()
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Translate(c.Transform.X, c.Transform.Y+c.Hover.Offset)
	screen.DrawImage(img, op)
}

func (r *RenderSystem) drawPlayer(screen *ebiten.Image, p *ecs.PlayerEntity) {
	s := p.Sprite
	x, y := spriteOrigin(p.Transform, p.Collider, s.Grid.CellW, s.Grid.CellH)

	sheet := s.Sheet.Image()
	rect, ok := s.Grid.FrameRect(s.Frame)
	if sheet == nil || !ok {
		vector.FillRect(screen, float32(x), float32(y), float32(s.Grid.CellW), float32(s.Grid.CellH), placeholderColor, false)
		return
	}
	frame, ok := sheet.SubImage(rect).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if s.FacingLeft {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(rect.Dx()), 0)
	}
	op.GeoM.Translate(x, y)
	if s.Tint != nil {
		op.ColorScale.ScaleWithColor(s.Tint)
	}
	screen.DrawImage(frame, op)
}

func (r *RenderSystem) drawDebug(screen *ebiten.Image, w *ecs.World, p *ecs.PlayerEntity) {
	cx := p.Transform.X - p.Collider.Width/2
	cy := p.Transform.Y - p.Collider.Height/2
	vector.StrokeRect(screen, float32(cx), float32(cy), float32(p.Collider.Width), float32(p.Collider.Height), 1, colliderColor, false)

	for _, c := range w.Collectibles() {
		col := c.Collectible
		vector.StrokeRect(screen, float32(col.X-col.Width/2), float32(col.Y-col.Height/2), float32(col.Width), float32(col.Height), 1, sensorColor, false)
	}

	grounded := p.Body != nil && p.Body.Grounded()
	form := "default"
	if p.Player.Form != nil {
		form = p.Player.Form.String()
	}
	msg := fmt.Sprintf("TPS: %.1f  tick: %d\nstate: %s  frame: %d  grounded: %t\nform: %s  move: %.2f  jump: %.2f  gravity: %.2f",
		ebiten.ActualTPS(), w.Tick(),
		p.Player.State, p.Sprite.Frame, grounded,
		form, p.Player.MovementScalar, p.Player.JumpStrength, p.GravityScale)
	ebitenutil.DebugPrint(screen, msg)
}

// spriteOrigin returns the top-left draw position for a cell centered on the
// body horizontally with its bottom edge on the collider's bottom edge.
func spriteOrigin(t component.Transform, c component.Collider, cellW, cellH int) (float64, float64) {
	x := t.X - float64(cellW)/2
	y := t.Y + c.Height/2 - float64(cellH)
	return x, y
}
