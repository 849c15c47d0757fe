package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration.
// The order is fixed so descriptions and spread checks are deterministic.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the capitalised name of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Describe returns the lowercase compass name used in narration
func (d Direction) Describe() string {
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
		return "nowhere"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
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
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction. North is +y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Go returns the position one step away from p in this direction
func (d Direction) Go(p Position) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ParseDirection maps a compass name ("north", "North", "n") to a Direction
func ParseDirection(name string) (Direction, bool) {
	switch name {
	case "north", "North", "n", "N":
		return North, true
	case "east", "East", "e", "E":
		return East, true
	case "south", "South", "s", "S":
		return South, true
	case "west", "West", "w", "W":
		return West, true
	default:
		return North, false
	}
}
