// Package maze implements the maze construction exercise: rooms, walls and
// doors wired into a Maze by interchangeable builders and factories.
package maze

// Direction represents a cardinal direction of a room side
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// numDirections is the number of side slots in a room
const numDirections = 4

// Directions returns all four cardinal directions in slot order
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// Opposite returns the direction facing d
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return North
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// ParseDirection converts a string to a Direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	default:
		return North, false
	}
}

func (d Direction) valid() bool {
	return d >= North && d <= West
}

// MapSite is anything that can be entered: rooms, walls and doors.
type MapSite interface {
	Enter()
}
