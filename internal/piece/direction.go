package piece

import "strings"

// Direction is one of the four orientations. Rotation states and movement
// directions share the type: North is spawn orientation and "up".
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Add returns the orientation reached after delta clockwise quarter turns.
// Negative deltas turn counter-clockwise.
func (d Direction) Add(delta int) Direction {
	return Direction(((int(d)+delta)%4 + 4) % 4)
}

// String returns the single-letter name.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// ParseDirection accepts "n", "north", "0", "e", "east", "r", ... (case-insensitive).
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "n", "north", "0", "spawn":
		return North, true
	case "e", "east", "r", "right", "cw":
		return East, true
	case "s", "south", "2", "down":
		return South, true
	case "w", "west", "l", "left", "ccw":
		return West, true
	}
	return North, false
}
