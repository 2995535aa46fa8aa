// Package audio plays the game's synthesised sound effects.
package audio

//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player

// Effect identifies a sound effect.
type Effect int

const (
	EffectShoot Effect = iota
)

func (e Effect) String() string {
	switch e {
	case EffectShoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// Player plays sound effects. Playing an effect that is already sounding
// restarts it.
type Player interface {
	Play(e Effect)
}

// Silent is a Player that discards every effect.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Effect) {}
