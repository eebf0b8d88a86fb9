package game

// Direction is the action type of the grid game: a one-cell step.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every step in the order legal actions are generated.
var Directions = []Direction{North, East, South, West}

var directionNames = []string{"north", "east", "south", "west"}

func (d Direction) String() string {
	if d < North || d > West {
		return "invalid"
	}
	return directionNames[d]
}

func (d Direction) delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}
