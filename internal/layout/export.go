package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KostyaKondratenko/DesignPatterns/internal/maze"
	"gopkg.in/yaml.v3"
)

// Side kinds written to YAML
const (
	SideWall  = "wall"
	SideDoor  = "door"
	SideRoom  = "room"
	SideOther = "other"
)

// MazeYAML is a finished maze in YAML form
type MazeYAML struct {
	Name  string     `yaml:"name"`
	Rooms []RoomYAML `yaml:"rooms"`
	Doors []DoorYAML `yaml:"doors,omitempty"`
}

// RoomYAML describes one room and its four sides
type RoomYAML struct {
	Number int                 `yaml:"number"`
	Spell  string              `yaml:"spell,omitempty"`
	Sides  map[string]SideYAML `yaml:"sides,omitempty"`
}

// SideYAML describes what occupies one side of a room
type SideYAML struct {
	Kind       string `yaml:"kind"`
	To         int    `yaml:"to,omitempty"`
	Bombed     bool   `yaml:"bombed,omitempty"`
	NeedsSpell bool   `yaml:"needs_spell,omitempty"`
}

// DoorYAML describes a door owned by the maze
type DoorYAML struct {
	From       int  `yaml:"from"`
	To         int  `yaml:"to"`
	NeedsSpell bool `yaml:"needs_spell,omitempty"`
}

// Export converts a maze to its YAML form. Rooms keep insertion order.
func Export(m *maze.Maze, name string) *MazeYAML {
	out := &MazeYAML{
		Name:  name,
		Rooms: make([]RoomYAML, 0, m.RoomCount()),
	}

	for _, room := range m.Rooms() {
		ry := RoomYAML{
			Number: room.Number(),
			Sides:  make(map[string]SideYAML),
		}
		if spell := room.Spell(); spell != nil {
			ry.Spell = spell.Incantation
		}
		for _, d := range maze.Directions() {
			side := room.GetSide(d)
			if side == nil {
				continue
			}
			ry.Sides[d.String()] = describeSide(room, side)
		}
		out.Rooms = append(out.Rooms, ry)
	}

	for _, door := range m.Doors() {
		first, second := door.Rooms()
		out.Doors = append(out.Doors, DoorYAML{
			From:       numberOf(first),
			To:         numberOf(second),
			NeedsSpell: door.NeedsSpell(),
		})
	}

	return out
}

func describeSide(room *maze.Room, side maze.MapSite) SideYAML {
	switch s := side.(type) {
	case *maze.Wall:
		return SideYAML{Kind: SideWall, Bombed: s.Bombed()}
	case *maze.Door:
		return SideYAML{Kind: SideDoor, To: numberOf(s.OtherSide(room)), NeedsSpell: s.NeedsSpell()}
	case *maze.Room:
		return SideYAML{Kind: SideRoom, To: s.Number()}
	default:
		return SideYAML{Kind: SideOther}
	}
}

func numberOf(room *maze.Room) int {
	if room == nil {
		return 0
	}
	return room.Number()
}

// WriteYAML exports the maze and writes it to path, creating parent
// directories as needed.
func WriteYAML(m *maze.Maze, name, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "# Maze: %s\n", name)
	fmt.Fprintf(f, "# Total rooms: %d\n\n", m.RoomCount())

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(Export(m, name)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML: %w", err)
	}

	return nil
}
