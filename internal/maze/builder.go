package maze

// Builder assembles a maze step by step. Steps are called in order:
// BuildMaze first, then any number of BuildRoom and BuildDoor calls,
// then GetMaze.
type Builder interface {
	BuildMaze()
	BuildRoom(number int)
	BuildDoor(from, to int)
	GetMaze() *Maze
}

// StandardBuilder builds real maze geometry
type StandardBuilder struct {
	current *Maze
}

func NewStandardBuilder() *StandardBuilder {
	return &StandardBuilder{}
}

// BuildMaze starts a new maze, discarding any maze in progress
func (b *StandardBuilder) BuildMaze() {
	b.current = NewMaze()
}

// BuildRoom adds a room walled on all four sides. It does nothing if no
// maze has been started or the maze already has a room with that number.
func (b *StandardBuilder) BuildRoom(number int) {
	if b.current == nil || b.current.GetRoom(number) != nil {
		return
	}

	room := NewRoom(number)
	b.current.AddRoom(room)
	for _, d := range Directions() {
		room.SetSide(d, NewWall())
	}
}

// BuildDoor joins two existing rooms with a door on their common wall.
// If either room does not exist the call is a no-op.
func (b *StandardBuilder) BuildDoor(from, to int) {
	if b.current == nil {
		return
	}
	fromRoom := b.current.GetRoom(from)
	toRoom := b.current.GetRoom(to)
	if fromRoom == nil || toRoom == nil {
		return
	}

	door := NewDoor(fromRoom, toRoom)
	b.current.AddDoor(door)

	side := commonWall(fromRoom, toRoom)
	fromRoom.SetSide(side, door)
	toRoom.SetSide(side.Opposite(), door)
}

// GetMaze returns the maze in progress, or an empty maze if none was started
func (b *StandardBuilder) GetMaze() *Maze {
	if b.current == nil {
		return NewMaze()
	}
	return b.current
}

// commonWall picks the side of from that faces to. Rooms have no
// coordinates, so the door always goes on from's east wall.
func commonWall(from, to *Room) Direction {
	return East
}

// CountingBuilder counts construction steps instead of building anything
type CountingBuilder struct {
	rooms int
	doors int
}

func NewCountingBuilder() *CountingBuilder {
	return &CountingBuilder{}
}

func (b *CountingBuilder) BuildMaze() {}

func (b *CountingBuilder) BuildRoom(number int) {
	b.rooms++
}

func (b *CountingBuilder) BuildDoor(from, to int) {
	b.doors++
}

// GetMaze always returns an empty maze
func (b *CountingBuilder) GetMaze() *Maze {
	return NewMaze()
}

// Counts returns how many times BuildRoom and BuildDoor were called
func (b *CountingBuilder) Counts() (rooms, doors int) {
	return b.rooms, b.doors
}

// FactoryBuilder runs the builder protocol on top of a Factory, so any
// factory can be driven by code written against Builder.
type FactoryBuilder struct {
	factory Factory
	current *Maze
}

func NewFactoryBuilder(factory Factory) *FactoryBuilder {
	return &FactoryBuilder{factory: factory}
}

func (b *FactoryBuilder) BuildMaze() {
	b.current = b.factory.MakeMaze()
}

func (b *FactoryBuilder) BuildRoom(number int) {
	if b.current == nil || b.current.GetRoom(number) != nil {
		return
	}

	room := b.factory.MakeRoom(number)
	b.current.AddRoom(room)
	for _, d := range Directions() {
		room.SetSide(d, b.factory.MakeWall())
	}
}

func (b *FactoryBuilder) BuildDoor(from, to int) {
	if b.current == nil {
		return
	}
	fromRoom := b.current.GetRoom(from)
	toRoom := b.current.GetRoom(to)
	if fromRoom == nil || toRoom == nil {
		return
	}

	door := b.factory.MakeDoor(fromRoom, toRoom)
	b.current.AddDoor(door)

	side := commonWall(fromRoom, toRoom)
	fromRoom.SetSide(side, door)
	toRoom.SetSide(side.Opposite(), door)
}

func (b *FactoryBuilder) GetMaze() *Maze {
	if b.current == nil {
		return b.factory.MakeMaze()
	}
	return b.current
}
