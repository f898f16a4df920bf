package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// GridCoord identifies a cell on the board. It is a value type; compare with ==.
type GridCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NoFood is reported as the food location once the board has no free cell left.
var NoFood = GridCoord{X: -1, Y: -1}

// Add returns the coordinate offset by (dx, dy).
func (c GridCoord) Add(dx, dy int) GridCoord {
	return GridCoord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring cell in direction d.
func (c GridCoord) Step(d Direction) GridCoord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

func (c GridCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Direction is the snake's heading.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// DefaultDirection is the heading of a freshly built snake.
const DefaultDirection = East

// Delta returns the per-move offset: North y-1, East x+1, South y+1, West x-1.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}
	return d
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseDirection accepts compass names (north, e, ...) and screen names (up, right, ...),
// the same vocabulary the config file is validated against.
func ParseDirection(s string) (Direction, error) {
	name, _ := config.CanonicalDirection(s)
	switch name {
	case "north":
		return North, nil
	case "east":
		return East, nil
	case "south":
		return South, nil
	case "west":
		return West, nil
	}
	return 0, fmt.Errorf("snake: unknown direction %q", s)
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("snake: invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
