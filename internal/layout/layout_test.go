package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/KostyaKondratenko/DesignPatterns/internal/maze"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const corridorYAML = `
name: corridor
rooms: [1, 2, 3]
doors:
  - from: 1
    to: 2
  - from: 2
    to: 3
  - from: 3
    to: 42
`

func TestParse(t *testing.T) {
	plan, err := Parse([]byte(corridorYAML))
	require.NoError(t, err)
	require.Equal(t, "corridor", plan.Name)
	require.Equal(t, []int{1, 2, 3}, plan.Rooms)
	require.Len(t, plan.Doors, 3)
	require.Equal(t, DoorPlan{From: 2, To: 3}, plan.Doors[1])
}

func TestParseEmptyPlan(t *testing.T) {
	_, err := Parse([]byte("name: nothing\n"))
	require.True(t, errors.Is(err, ErrEmptyPlan))
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("rooms: [1, 2"))
	require.Error(t, err)
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corridor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(corridorYAML), 0644))

	plan, err := LoadFromYAML(path)
	require.NoError(t, err)
	require.Equal(t, "corridor", plan.Name)

	_, err = LoadFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApplyWithStandardBuilder(t *testing.T) {
	plan, err := Parse([]byte(corridorYAML))
	require.NoError(t, err)

	m := plan.Apply(maze.NewStandardBuilder())

	require.Equal(t, 3, m.RoomCount())
	// The door to the missing room 42 is skipped
	require.Len(t, m.Doors(), 2)
	require.Equal(t, []int{1, 2, 3}, m.Reachable(1))

	middle := m.GetRoom(2)
	require.IsType(t, &maze.Door{}, middle.GetSide(maze.West))
	require.IsType(t, &maze.Door{}, middle.GetSide(maze.East))
	require.IsType(t, &maze.Wall{}, m.GetRoom(3).GetSide(maze.East))
}

func TestApplyWithCountingBuilder(t *testing.T) {
	plan, err := Parse([]byte(corridorYAML))
	require.NoError(t, err)

	builder := maze.NewCountingBuilder()
	plan.Apply(builder)

	rooms, doors := builder.Counts()
	require.Equal(t, 3, rooms)
	require.Equal(t, 3, doors)
}

func TestApplyWithFactoryBuilder(t *testing.T) {
	m := TwoRoomPlan().Apply(maze.NewFactoryBuilder(maze.NewBombedPrototypeFactory()))

	require.Equal(t, 2, m.RoomCount())
	wall, ok := m.GetRoom(2).GetSide(maze.North).(*maze.Wall)
	require.True(t, ok)
	require.True(t, wall.Bombed())
}

func TestExport(t *testing.T) {
	m := maze.NewGame().CreateMaze(maze.NewEnchantedFactory("aperio"))

	out := Export(m, "enchanted")

	require.Equal(t, "enchanted", out.Name)
	require.Len(t, out.Rooms, 2)
	require.Equal(t, 1, out.Rooms[0].Number)
	require.Equal(t, "aperio", out.Rooms[0].Spell)
	require.Equal(t, SideYAML{Kind: SideDoor, To: 2, NeedsSpell: true}, out.Rooms[0].Sides["east"])
	require.Equal(t, SideYAML{Kind: SideDoor, To: 1, NeedsSpell: true}, out.Rooms[1].Sides["west"])
	require.Equal(t, SideYAML{Kind: SideWall}, out.Rooms[1].Sides["east"])
	require.Equal(t, []DoorYAML{{From: 1, To: 2, NeedsSpell: true}}, out.Doors)
}

func TestWriteYAML(t *testing.T) {
	m := maze.NewGame().CreateMaze(maze.NewBombedPrototypeFactory())
	path := filepath.Join(t.TempDir(), "out", "bombed.yaml")

	require.NoError(t, WriteYAML(m, "bombed", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var written MazeYAML
	require.NoError(t, yaml.Unmarshal(data, &written))
	require.Equal(t, "bombed", written.Name)
	require.Len(t, written.Rooms, 2)
	require.True(t, written.Rooms[0].Sides["north"].Bombed)
	require.Equal(t, SideDoor, written.Rooms[0].Sides["east"].Kind)
}
