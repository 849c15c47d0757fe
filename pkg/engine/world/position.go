package world

import "fmt"

// Position identifies a grid cell. Positions are compared by value.
type Position struct {
	X int
	Y int
}

// Pos is shorthand for Position{X: x, Y: y}
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns the position as "(x,y)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
