package component

// PlayerState selects which animation behavior is active for the player.
// Exactly one state is active at a time.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerWalking
	PlayerJumping
	PlayerJumpingInAir
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerWalking:
		return "walking"
	case PlayerJumping:
		return "jumping"
	case PlayerJumpingInAir:
		return "jumping_in_air"
	default:
		return "unknown"
	}
}
