package maze

import (
	"fmt"

	"github.com/KostyaKondratenko/DesignPatterns/internal/logger"
	"github.com/oklog/ulid/v2"
)

// Game lays out mazes. The sequence of construction steps is fixed; the
// builder or factory passed in decides what gets built.
type Game struct{}

func NewGame() *Game {
	return &Game{}
}

// CreateMaze builds the two-room maze with a factory: rooms 1 and 2 joined
// by a door on room 1's east side and room 2's west side, walls elsewhere.
func (g *Game) CreateMaze(factory Factory) *Maze {
	buildID := ulid.Make()
	logger.Debug("Creating maze", "build_id", buildID, "factory", fmt.Sprintf("%T", factory))

	maze := factory.MakeMaze()
	firstRoom := factory.MakeRoom(1)
	secondRoom := factory.MakeRoom(2)
	door := factory.MakeDoor(firstRoom, secondRoom)

	maze.AddRoom(firstRoom)
	maze.AddRoom(secondRoom)
	maze.AddDoor(door)

	firstRoom.SetSide(North, factory.MakeWall())
	firstRoom.SetSide(East, door)
	firstRoom.SetSide(South, factory.MakeWall())
	firstRoom.SetSide(West, factory.MakeWall())

	secondRoom.SetSide(North, factory.MakeWall())
	secondRoom.SetSide(East, factory.MakeWall())
	secondRoom.SetSide(South, factory.MakeWall())
	secondRoom.SetSide(West, door)

	logger.Info("Maze created", "build_id", buildID, "rooms", maze.RoomCount(), "doors", len(maze.doors))
	return maze
}

// BuildMaze builds the same two-room maze through a builder
func (g *Game) BuildMaze(builder Builder) *Maze {
	buildID := ulid.Make()
	logger.Debug("Building maze", "build_id", buildID, "builder", fmt.Sprintf("%T", builder))

	builder.BuildMaze()
	builder.BuildRoom(1)
	builder.BuildRoom(2)
	builder.BuildDoor(1, 2)

	maze := builder.GetMaze()
	logger.Info("Maze built", "build_id", buildID, "rooms", maze.RoomCount(), "doors", len(maze.doors))
	return maze
}

// BuildComplexMaze builds a maze with widely spaced room numbers and no
// doors between them.
func (g *Game) BuildComplexMaze(builder Builder) *Maze {
	buildID := ulid.Make()
	logger.Debug("Building complex maze", "build_id", buildID, "builder", fmt.Sprintf("%T", builder))

	builder.BuildMaze()
	builder.BuildRoom(1)
	builder.BuildRoom(1001)

	maze := builder.GetMaze()
	logger.Info("Complex maze built", "build_id", buildID, "rooms", maze.RoomCount())
	return maze
}
