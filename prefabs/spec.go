package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	PlayerFile       = "player.yaml"
	CatalystsFile    = "catalysts.yaml"
	CollectiblesFile = "collectibles.yaml"
)

var (
	ErrInvalidFrameRange = errors.New("prefabs: invalid frame range")
	ErrInvalidValue      = errors.New("prefabs: invalid value")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name           string        `yaml:"name"`
	MovementScalar float64       `yaml:"movement_scalar"`
	JumpStrength   float64       `yaml:"jump_strength"`
	GravityScale   float64       `yaml:"gravity_scale"`
	Collider       ColliderSpec  `yaml:"collider"`
	Sheet          SheetSpec     `yaml:"sheet"`
	Animation      AnimationSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerFile, err)
	}
	return &spec, nil
}

func (s PlayerSpec) Validate() error {
	if s.MovementScalar <= 0 {
		return fmt.Errorf("%w: movement_scalar must be positive", ErrInvalidValue)
	}
	if s.JumpStrength <= 0 {
		return fmt.Errorf("%w: jump_strength must be positive", ErrInvalidValue)
	}
	if err := s.Collider.Validate(); err != nil {
		return err
	}
	if err := s.Sheet.Validate(); err != nil {
		return err
	}
	return s.Animation.Validate(s.Sheet.Frames())
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (c ColliderSpec) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: collider %vx%v", ErrInvalidValue, c.Width, c.Height)
	}
	return nil
}

type SheetSpec struct {
	Image   string `yaml:"image"`
	CellW   int    `yaml:"cell_w"`
	CellH   int    `yaml:"cell_h"`
	Columns int    `yaml:"columns"`
	Rows    int    `yaml:"rows"`
}

func (s SheetSpec) Frames() int {
	return s.Columns * s.Rows
}

func (s SheetSpec) Validate() error {
	if s.Image == "" {
		return fmt.Errorf("%w: sheet image is empty", ErrInvalidValue)
	}
	if s.CellW <= 0 || s.CellH <= 0 || s.Columns <= 0 || s.Rows <= 0 {
		return fmt.Errorf("%w: sheet grid %dx%d cells of %dx%d", ErrInvalidValue, s.Columns, s.Rows, s.CellW, s.CellH)
	}
	return nil
}

type FrameRangeSpec struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

func (r FrameRangeSpec) overlaps(o FrameRangeSpec) bool {
	return r.First <= o.Last && o.First <= r.Last
}

type AnimationSpec struct {
	IntervalMS      int            `yaml:"interval_ms"`
	Idle            FrameRangeSpec `yaml:"idle"`
	Walk            FrameRangeSpec `yaml:"walk"`
	Jump            FrameRangeSpec `yaml:"jump"`
	BlinkSequenceMS []int          `yaml:"blink_sequence_ms"`
}

func (a AnimationSpec) Interval() time.Duration {
	return time.Duration(a.IntervalMS) * time.Millisecond
}

func (a AnimationSpec) BlinkSequence() []time.Duration {
	out := make([]time.Duration, 0, len(a.BlinkSequenceMS))
	for _, ms := range a.BlinkSequenceMS {
		out = append(out, time.Duration(ms)*time.Millisecond)
	}
	return out
}

// Validate checks the ranges against a sheet with frames cells. The idle
// window needs an open and a closed frame, and the jump window needs a
// distinct impulse frame before its last frame.
func (a AnimationSpec) Validate(frames int) error {
	if a.IntervalMS <= 0 {
		return fmt.Errorf("%w: interval_ms must be positive", ErrInvalidValue)
	}
	ranges := []struct {
		name    string
		r       FrameRangeSpec
		minSpan int
	}{
		{"idle", a.Idle, 2},
		{"walk", a.Walk, 1},
		{"jump", a.Jump, 3},
	}
	for _, rr := range ranges {
		if rr.r.First < 0 || rr.r.Last < rr.r.First {
			return fmt.Errorf("%w: %s [%d,%d] is not ordered", ErrInvalidFrameRange, rr.name, rr.r.First, rr.r.Last)
		}
		if frames > 0 && rr.r.Last >= frames {
			return fmt.Errorf("%w: %s [%d,%d] exceeds %d frames", ErrInvalidFrameRange, rr.name, rr.r.First, rr.r.Last, frames)
		}
		if span := rr.r.Last - rr.r.First + 1; span < rr.minSpan {
			return fmt.Errorf("%w: %s [%d,%d] needs at least %d frames", ErrInvalidFrameRange, rr.name, rr.r.First, rr.r.Last, rr.minSpan)
		}
	}
	for i := range ranges {
		for j := i + 1; j < len(ranges); j++ {
			if ranges[i].r.overlaps(ranges[j].r) {
				return fmt.Errorf("%w: %s and %s overlap", ErrInvalidFrameRange, ranges[i].name, ranges[j].name)
			}
		}
	}
	if len(a.BlinkSequenceMS) == 0 {
		return fmt.Errorf("%w: blink_sequence_ms is empty", ErrInvalidValue)
	}
	for _, ms := range a.BlinkSequenceMS {
		if ms <= 0 {
			return fmt.Errorf("%w: blink duration %dms", ErrInvalidValue, ms)
		}
	}
	return nil
}

type CatalystSpec struct {
	Sheet          string       `yaml:"sheet"`
	Collider       ColliderSpec `yaml:"collider"`
	GravityScale   float64      `yaml:"gravity_scale"`
	IntervalMS     int          `yaml:"interval_ms"`
	MovementScalar float64      `yaml:"movement_scalar"`
	JumpStrength   float64      `yaml:"jump_strength"`
	Tint           *YAMLColor   `yaml:"tint"`
}

func (c CatalystSpec) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

func (c CatalystSpec) Validate() error {
	if c.Sheet == "" {
		return fmt.Errorf("%w: sheet is empty", ErrInvalidValue)
	}
	if err := c.Collider.Validate(); err != nil {
		return err
	}
	if c.GravityScale < 0 {
		return fmt.Errorf("%w: gravity_scale %v", ErrInvalidValue, c.GravityScale)
	}
	if c.IntervalMS <= 0 {
		return fmt.Errorf("%w: interval_ms must be positive", ErrInvalidValue)
	}
	if c.MovementScalar <= 0 || c.JumpStrength <= 0 {
		return fmt.Errorf("%w: movement_scalar and jump_strength must be positive", ErrInvalidValue)
	}
	return nil
}

// CatalystTableSpec is keyed by potion name.
type CatalystTableSpec struct {
	Catalysts map[string]CatalystSpec `yaml:"catalysts"`
}

func LoadCatalystTable() (*CatalystTableSpec, error) {
	spec, err := LoadSpec[CatalystTableSpec](CatalystsFile)
	if err != nil {
		return nil, err
	}
	for name, c := range spec.Catalysts {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("prefabs: %s: %s: %w", CatalystsFile, name, err)
		}
	}
	return &spec, nil
}

type CollectibleSpawnSpec struct {
	Potion string  `yaml:"potion"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

type HoverSpec struct {
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
}

// CollectibleLayoutSpec describes pickups: textures per potion, sensor size,
// and the layout used when the level has none.
type CollectibleLayoutSpec struct {
	Collectibles []CollectibleSpawnSpec `yaml:"collectibles"`
	Sensor       ColliderSpec           `yaml:"sensor"`
	Textures     map[string]string      `yaml:"textures"`
	Hover        HoverSpec              `yaml:"hover"`
}

func LoadCollectibleLayout() (*CollectibleLayoutSpec, error) {
	spec, err := LoadSpec[CollectibleLayoutSpec](CollectiblesFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Sensor.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: sensor: %w", CollectiblesFile, err)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
