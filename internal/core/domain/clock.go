package domain

import "time"

// GameSpeed names a tick rate of the game clock.
type GameSpeed string

const (
	SpeedSlow   GameSpeed = "slow"
	SpeedMedium GameSpeed = "medium"
	SpeedFast   GameSpeed = "fast"
)

// Valid reports whether s is a known speed.
func (s GameSpeed) Valid() bool {
	return s == SpeedSlow || s == SpeedMedium || s == SpeedFast
}

// GameClockState is the persisted state of the game clock.
type GameClockState struct {
	CurrentDate time.Time
	Running     bool
	Speed       GameSpeed
	UpdatedAt   time.Time
}
