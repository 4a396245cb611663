package maze

// Factory creates the parts of a maze. Implementations decide which
// concrete variant of each part is produced.
type Factory interface {
	MakeMaze() *Maze
	MakeWall() *Wall
	MakeRoom(number int) *Room
	MakeDoor(first, second *Room) *Door
}

// StandardFactory makes plain mazes
type StandardFactory struct{}

func NewStandardFactory() *StandardFactory {
	return &StandardFactory{}
}

func (f *StandardFactory) MakeMaze() *Maze {
	return NewMaze()
}

func (f *StandardFactory) MakeWall() *Wall {
	return NewWall()
}

func (f *StandardFactory) MakeRoom(number int) *Room {
	return NewRoom(number)
}

func (f *StandardFactory) MakeDoor(first, second *Room) *Door {
	return NewDoor(first, second)
}

// DefaultIncantation is cast on enchanted rooms when none is configured
const DefaultIncantation = "aperio"

// EnchantedFactory makes rooms that carry a spell and doors that need one.
// Mazes and walls are the standard ones.
type EnchantedFactory struct {
	StandardFactory
	incantation string
}

// NewEnchantedFactory creates an enchanted factory casting the given
// incantation. An empty incantation uses DefaultIncantation.
func NewEnchantedFactory(incantation string) *EnchantedFactory {
	if incantation == "" {
		incantation = DefaultIncantation
	}
	return &EnchantedFactory{incantation: incantation}
}

func (f *EnchantedFactory) MakeRoom(number int) *Room {
	return NewEnchantedRoom(number, f.castSpell())
}

func (f *EnchantedFactory) MakeDoor(first, second *Room) *Door {
	return NewDoorNeedingSpell(first, second)
}

func (f *EnchantedFactory) castSpell() Spell {
	return Spell{Incantation: f.incantation}
}
