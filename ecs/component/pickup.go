package component

import (
	"fmt"
	"strings"
)

// Potion is the closed catalog of collectible kinds.
type Potion int

const (
	PotionRed Potion = iota
	PotionGreen
	PotionBlue
)

// Potions lists every potion in declaration order.
var Potions = []Potion{PotionRed, PotionGreen, PotionBlue}

func (p Potion) String() string {
	switch p {
	case PotionRed:
		return "red"
	case PotionGreen:
		return "green"
	case PotionBlue:
		return "blue"
	default:
		return fmt.Sprintf("potion(%d)", int(p))
	}
}

// ParsePotion maps a case-insensitive name to a Potion.
func ParsePotion(s string) (Potion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return PotionRed, nil
	case "green":
		return PotionGreen, nil
	case "blue":
		return PotionBlue, nil
	default:
		return 0, fmt.Errorf("unknown potion %q", s)
	}
}

// Collectible is a pickup waiting for the player to overlap its sensor.
type Collectible struct {
	Type   Potion
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// TransformSignal is emitted once per consumed collectible.
type TransformSignal struct {
	Catalyst Potion
}

// CollectibleSpawn is one entry of a level's collectible layout.
type CollectibleSpawn struct {
	Type Potion
	X    float64
	Y    float64
}
