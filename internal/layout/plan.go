// Package layout loads maze plans from YAML, drives builders with them and
// writes finished mazes back out as YAML.
package layout

import (
	"errors"
	"fmt"
	"os"

	"github.com/KostyaKondratenko/DesignPatterns/internal/logger"
	"github.com/KostyaKondratenko/DesignPatterns/internal/maze"
	"gopkg.in/yaml.v3"
)

// ErrEmptyPlan is returned when a plan has no rooms
var ErrEmptyPlan = errors.New("layout plan has no rooms")

// Plan describes a maze as a list of rooms and the doors between them
type Plan struct {
	Name  string     `yaml:"name"`
	Rooms []int      `yaml:"rooms"`
	Doors []DoorPlan `yaml:"doors"`
}

// DoorPlan joins room From to room To. The door goes on From's east side
// and To's west side.
type DoorPlan struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// TwoRoomPlan is the plan of the default maze: rooms 1 and 2 and one door
func TwoRoomPlan() *Plan {
	return &Plan{
		Name:  "two rooms",
		Rooms: []int{1, 2},
		Doors: []DoorPlan{{From: 1, To: 2}},
	}
}

// LoadFromYAML loads a plan from a YAML file
func LoadFromYAML(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}

	plan, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", filename, err)
	}
	return plan, nil
}

// Parse decodes a plan from YAML. Duplicate rooms and doors naming unknown
// rooms are accepted; builders ignore them.
func Parse(data []byte) (*Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}
	if len(plan.Rooms) == 0 {
		return nil, ErrEmptyPlan
	}
	return &plan, nil
}

// Apply runs the plan through a builder and returns the builder's maze.
// Every room and door in the plan is passed on, in order.
func (p *Plan) Apply(builder maze.Builder) *maze.Maze {
	builder.BuildMaze()
	for _, number := range p.Rooms {
		builder.BuildRoom(number)
	}
	for _, door := range p.Doors {
		builder.BuildDoor(door.From, door.To)
	}

	m := builder.GetMaze()
	logger.Debug("Layout applied",
		"layout", p.Name,
		"planned_rooms", len(p.Rooms),
		"planned_doors", len(p.Doors),
		"rooms", m.RoomCount(),
		"doors", len(m.Doors()))
	return m
}
