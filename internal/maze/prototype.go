package maze

// PrototypeFactory makes maze parts by cloning the prototypes it holds.
// Cloned rooms are renumbered and cloned doors are attached to the
// requested rooms; the prototypes themselves are never modified.
type PrototypeFactory struct {
	maze *Maze
	room *Room
	wall *Wall
	door *Door
}

func NewPrototypeFactory(maze *Maze, room *Room, wall *Wall, door *Door) *PrototypeFactory {
	return &PrototypeFactory{
		maze: maze,
		room: room,
		wall: wall,
		door: door,
	}
}

// NewSimplePrototypeFactory returns a prototype factory holding plain parts
func NewSimplePrototypeFactory() *PrototypeFactory {
	return NewPrototypeFactory(NewMaze(), NewRoom(0), NewWall(), blankDoor())
}

// NewBombedPrototypeFactory returns a prototype factory whose walls are bombed
func NewBombedPrototypeFactory() *PrototypeFactory {
	return NewPrototypeFactory(NewMaze(), NewRoom(0), NewBombedWall(), blankDoor())
}

// blankDoor is a door prototype between two unnumbered rooms
func blankDoor() *Door {
	return NewDoor(NewRoom(0), NewRoom(0))
}

func (f *PrototypeFactory) MakeMaze() *Maze {
	return f.maze.Clone()
}

func (f *PrototypeFactory) MakeWall() *Wall {
	return f.wall.Clone()
}

func (f *PrototypeFactory) MakeRoom(number int) *Room {
	room := f.room.Clone()
	room.SetNumber(number)
	return room
}

func (f *PrototypeFactory) MakeDoor(first, second *Room) *Door {
	door := f.door.Clone()
	door.AddRooms(first, second)
	return door
}
