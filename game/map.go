package game

import (
	"fmt"
	"strings"
)

const (
	wallCell = '#'
	freeCell = '.'
)

// Map represents the static board: its dimensions, walls and the starting cell of each agent.
type Map struct {
	Rows   int
	Cols   int
	Walls  []bool // Indexed by cell ID (row*Cols + col)
	Starts []int  // Starting cell ID per agent ID
}

// NewMap creates an empty rows x cols map without agents.
func NewMap(rows, cols int) *Map {
	return &Map{
		Rows:  rows,
		Cols:  cols,
		Walls: make([]bool, rows*cols),
	}
}

// AddWall marks a cell as permanently blocked.
func (m *Map) AddWall(row, col int) {
	m.Walls[m.CellID(row, col)] = true
}

// AddAgent places the next agent (IDs are handed out in order) on a cell and returns its ID.
func (m *Map) AddAgent(row, col int) AgentID {
	m.Starts = append(m.Starts, m.CellID(row, col))
	return AgentID(len(m.Starts) - 1)
}

func (m *Map) CellID(row, col int) int {
	return row*m.Cols + col
}

func (m *Map) Cell(id int) (row, col int) {
	return id / m.Cols, id % m.Cols
}

// Neighbor returns the cell reached by stepping from cell in direction d, or false when the step
// leaves the board or hits a wall.
func (m *Map) Neighbor(cell int, d Direction) (int, bool) {
	row, col := m.Cell(cell)
	dr, dc := d.delta()
	row, col = row+dr, col+dc
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return 0, false
	}
	next := m.CellID(row, col)
	if m.Walls[next] {
		return 0, false
	}
	return next, true
}

// ParseMap reads a map from its text layout: '#' is a wall, '.' a free cell and the digits 0-9
// the starting cells of the agents with those IDs. Blank lines are ignored, rows must be equally long.
func ParseMap(layout string) (*Map, error) {
	var lines []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty map layout")
	}

	m := NewMap(len(lines), len(lines[0]))
	starts := map[int]int{}
	for row, line := range lines {
		if len(line) != m.Cols {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", row, len(line), m.Cols)
		}
		for col, c := range line {
			switch {
			case c == wallCell:
				m.AddWall(row, col)
			case c == freeCell:
			case c >= '0' && c <= '9':
				id := int(c - '0')
				if _, ok := starts[id]; ok {
					return nil, fmt.Errorf("agent %d placed twice", id)
				}
				starts[id] = m.CellID(row, col)
			default:
				return nil, fmt.Errorf("unexpected cell %q at row %d col %d", c, row, col)
			}
		}
	}

	m.Starts = make([]int, len(starts))
	for id := range m.Starts {
		cell, ok := starts[id]
		if !ok {
			return nil, fmt.Errorf("agent ids must be contiguous from 0, missing agent %d", id)
		}
		m.Starts[id] = cell
	}
	return m, nil
}
