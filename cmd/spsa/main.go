package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/shapeshift/assets"
	"github.com/milk9111/shapeshift/ecs/component"
	"github.com/milk9111/shapeshift/ecs/entity"
	"github.com/milk9111/shapeshift/prefabs"
)

const (
	previewSize  = 512
	previewScale = 8
)

// previewGame loops one animation window of a form's sprite sheet at the
// form's frame interval.
type previewGame struct {
	frames []*ebiten.Image
	first  int
	label  string

	current int
	timer   component.Timer
}

func (g *previewGame) Update() error {
	if len(g.frames) <= 1 {
		return nil
	}
	if g.timer.Tick(time.Second / time.Duration(ebiten.TPS())).Finished() {
		g.current = (g.current + 1) % len(g.frames)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if len(g.frames) == 0 {
		return
	}
	fw := g.frames[0].Bounds().Dx() * previewScale
	fh := g.frames[0].Bounds().Dy() * previewScale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(previewScale, previewScale)
	op.GeoM.Translate(float64(previewSize-fw)/2, float64(previewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.frames[g.current], op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d", g.label, g.first+g.current))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func loadFrames(path string, grid assets.SheetGrid, r component.FrameRange) ([]*ebiten.Image, error) {
	b, err := assets.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	sheet := ebiten.NewImageFromImage(img)

	frames := make([]*ebiten.Image, 0, r.Len())
	for i := r.First; i <= r.Last; i++ {
		rect, ok := grid.FrameRect(i)
		if !ok || !rect.In(sheet.Bounds()) {
			return nil, fmt.Errorf("%s: frame %d outside the sheet", path, i)
		}
		frames = append(frames, sheet.SubImage(rect).(*ebiten.Image))
	}
	return frames, nil
}

func main() {
	formName := flag.String("form", "", "catalyst form to preview (red, green, blue); empty for the starting form")
	stateName := flag.String("state", "walking", "animation window: idle, walking or jumping")
	flag.Parse()

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	anim := entity.AnimationFromSpec(spec.Animation)
	sheet := spec.Sheet.Image
	interval := spec.Animation.Interval()

	if *formName != "" {
		potion, err := component.ParsePotion(*formName)
		if err != nil {
			log.Fatal(err)
		}
		tableSpec, err := prefabs.LoadCatalystTable()
		if err != nil {
			log.Fatal(err)
		}
		table, err := entity.CatalystTable(tableSpec)
		if err != nil {
			log.Fatal(err)
		}
		recipe, ok := table.Lookup(potion)
		if !ok {
			log.Fatalf("no catalyst for %s", potion)
		}
		sheet, interval = recipe.Sheet, recipe.TimerInterval
	}

	var state component.PlayerState
	switch *stateName {
	case "idle":
		state = component.PlayerIdle
	case "walking":
		state = component.PlayerWalking
	case "jumping":
		state = component.PlayerJumping
	default:
		log.Fatalf("unknown state %q", *stateName)
	}
	window := anim.RangeFor(state)

	frames, err := loadFrames(sheet, entity.SheetGridFromSpec(spec.Sheet), window)
	if err != nil {
		log.Fatal(err)
	}

	g := &previewGame{
		frames: frames,
		first:  window.First,
		label:  fmt.Sprintf("%s %s", sheet, state),
		timer:  component.NewTimer(interval, component.TimerRepeating),
	}
	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Sprite Sheet Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
