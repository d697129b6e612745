package ecs

import (
	"errors"
	"fmt"
	"time"

	"github.com/milk9111/shapeshift/assets"
	"github.com/milk9111/shapeshift/ecs/component"
)

var (
	ErrNoPlayer        = errors.New("ecs: no player entity")
	ErrMultiplePlayers = errors.New("ecs: player entity already exists")
)

// PhysicsWorld is the physics collaborator as seen by entity builders.
type PhysicsWorld interface {
	AddPlayer(e Entity, x, y float64, c component.Collider) component.Body
	AddPlatform(e Entity, x, y, width, height float64)
	AddSensor(e Entity, x, y, width, height float64)
	Remove(e Entity)
}

// PlayerEntity is the single player record. It owns its animation, sprite and
// body handle; only the tick's systems mutate it.
type PlayerEntity struct {
	Entity       Entity
	Player       component.Player
	Animation    component.PlayerAnimation
	Sprite       component.Sprite
	Transform    component.Transform
	Collider     component.Collider
	GravityScale float64
	Body         component.Body
}

// CollectibleEntity is a live pickup.
type CollectibleEntity struct {
	Entity      Entity
	Collectible component.Collectible
	Transform   component.Transform
	Texture     *assets.Handle
	Hover       component.Hover
}

// Platform is static level geometry, kept for drawing.
type Platform struct {
	Entity Entity
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// World is the per-run context handed to every system.
type World struct {
	entities entityStore
	tick     uint64

	// Delta is the wall-clock time covered by the current tick.
	Delta time.Duration
	Input component.Input

	// Textures holds collectible images, Sheets the player form sheets.
	Textures  *assets.Registry[component.Potion, *assets.Handle]
	Sheets    *assets.Registry[component.Potion, *assets.Handle]
	Catalysts component.CatalystTable

	Collisions EventQueue[CollisionEvent]
	Signals    EventQueue[component.TransformSignal]
	// Applied carries the signals the transformation stage actually applied.
	Applied EventQueue[component.TransformSignal]

	player       *PlayerEntity
	collectibles []*CollectibleEntity
	platforms    []Platform

	physicsWorld PhysicsWorld
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		Textures:  assets.NewRegistry[component.Potion, *assets.Handle](),
		Sheets:    assets.NewRegistry[component.Potion, *assets.Handle](),
		Catalysts: component.CatalystTable{},
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity marks an entity as dead. It returns false for stale handles.
func (w *World) DestroyEntity(e Entity) bool {
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.alive()
}

// Tick returns the number of completed ticks.
func (w *World) Tick() uint64 {
	return w.tick
}

// SetPhysicsWorld attaches the physics collaborator.
func (w *World) SetPhysicsWorld(pw PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics collaborator, if any.
func (w *World) PhysicsWorld() PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

// AddPlayer registers p as the player. A second player is refused.
func (w *World) AddPlayer(p *PlayerEntity) error {
	if p == nil {
		return fmt.Errorf("ecs: add player: %w", ErrNoPlayer)
	}
	if w.player != nil && w.IsAlive(w.player.Entity) {
		return ErrMultiplePlayers
	}
	w.player = p
	return nil
}

// Player returns the player record when one exists.
func (w *World) Player() (*PlayerEntity, bool) {
	if w == nil || w.player == nil || !w.IsAlive(w.player.Entity) {
		return nil, false
	}
	return w.player, true
}

// MustPlayer returns the player and panics when there is none. Systems that
// cannot run without a player use it; a missing player is a wiring bug.
func (w *World) MustPlayer() *PlayerEntity {
	p, ok := w.Player()
	if !ok {
		panic(ErrNoPlayer)
	}
	return p
}

// RemovePlayer despawns the player and its body.
func (w *World) RemovePlayer() {
	p, ok := w.Player()
	if !ok {
		return
	}
	if w.physicsWorld != nil {
		w.physicsWorld.Remove(p.Entity)
	}
	w.DestroyEntity(p.Entity)
	w.player = nil
}

// AddCollectible appends c to the live collectible list.
func (w *World) AddCollectible(c *CollectibleEntity) {
	if w == nil || c == nil {
		return
	}
	w.collectibles = append(w.collectibles, c)
}

// Collectible returns the live collectible for e.
func (w *World) Collectible(e Entity) (*CollectibleEntity, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	for _, c := range w.collectibles {
		if c.Entity == e {
			return c, true
		}
	}
	return nil, false
}

// Collectibles returns the live collectibles in spawn order.
func (w *World) Collectibles() []*CollectibleEntity {
	if w == nil {
		return nil
	}
	return w.collectibles
}

// DespawnCollectible removes the collectible, its sensor and its entity. It
// returns false if e was already gone.
func (w *World) DespawnCollectible(e Entity) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	idx := -1
	for i, c := range w.collectibles {
		if c.Entity == e {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	w.collectibles = append(w.collectibles[:idx], w.collectibles[idx+1:]...)
	if w.physicsWorld != nil {
		w.physicsWorld.Remove(e)
	}
	return w.DestroyEntity(e)
}

// AddPlatform records static geometry.
func (w *World) AddPlatform(p Platform) {
	if w == nil {
		return
	}
	w.platforms = append(w.platforms, p)
}

// Platforms returns the static geometry.
func (w *World) Platforms() []Platform {
	if w == nil {
		return nil
	}
	return w.platforms
}

// endTick clears per-tick state so nothing leaks into the next tick.
func (w *World) endTick() {
	w.tick++
	w.Collisions.flush()
	w.Signals.flush()
	w.Applied.flush()
}
