package maze

import "github.com/zyedidia/generic/mapset"

// Maze is an ordered collection of rooms together with the doors joining them.
// The maze owns its rooms and doors; rooms only reference their sides.
type Maze struct {
	rooms []*Room
	doors []*Door
}

// NewMaze creates an empty maze
func NewMaze() *Maze {
	return &Maze{
		rooms: make([]*Room, 0),
		doors: make([]*Door, 0),
	}
}

// AddRoom appends a room. Room numbers are not checked for duplicates.
func (m *Maze) AddRoom(room *Room) {
	m.rooms = append(m.rooms, room)
}

// GetRoom returns the first room with the given number, or nil
func (m *Maze) GetRoom(number int) *Room {
	for _, room := range m.rooms {
		if room.number == number {
			return room
		}
	}
	return nil
}

// Rooms returns a copy of the rooms in insertion order
func (m *Maze) Rooms() []*Room {
	rooms := make([]*Room, len(m.rooms))
	copy(rooms, m.rooms)
	return rooms
}

// RoomCount returns the number of rooms in the maze
func (m *Maze) RoomCount() int {
	return len(m.rooms)
}

// AddDoor registers a door as owned by the maze
func (m *Maze) AddDoor(door *Door) {
	m.doors = append(m.doors, door)
}

// Doors returns a copy of the doors owned by the maze
func (m *Maze) Doors() []*Door {
	doors := make([]*Door, len(m.doors))
	copy(doors, m.doors)
	return doors
}

// Reachable returns the numbers of every room that can be walked to from
// room number from through doors, in breadth-first order starting with from
// itself. Returns nil if the maze has no such room.
func (m *Maze) Reachable(from int) []int {
	start := m.GetRoom(from)
	if start == nil {
		return nil
	}

	visited := mapset.New[*Room]()
	visited.Put(start)
	queue := []*Room{start}
	var numbers []int

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		numbers = append(numbers, current.number)

		for _, site := range current.sides {
			door, ok := site.(*Door)
			if !ok {
				continue
			}
			next := door.OtherSide(current)
			if next == nil || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}

	return numbers
}

// Clone returns a deep copy of the maze. Rooms, walls and doors are all
// copied; cloned doors join the cloned rooms, and a door shared by two rooms
// stays shared by their clones.
func (m *Maze) Clone() *Maze {
	clone := &Maze{
		rooms: make([]*Room, 0, len(m.rooms)),
		doors: make([]*Door, 0, len(m.doors)),
	}

	roomMap := make(map[*Room]*Room, len(m.rooms))
	for _, room := range m.rooms {
		roomMap[room] = room.cloneBare()
		clone.rooms = append(clone.rooms, roomMap[room])
	}
	remap := func(room *Room) *Room {
		if c, ok := roomMap[room]; ok {
			return c
		}
		return room
	}

	doorMap := make(map[*Door]*Door, len(m.doors))
	cloneDoor := func(door *Door) *Door {
		if c, ok := doorMap[door]; ok {
			return c
		}
		c := door.Clone()
		c.AddRooms(remap(door.first), remap(door.second))
		doorMap[door] = c
		return c
	}

	for _, door := range m.doors {
		clone.doors = append(clone.doors, cloneDoor(door))
	}

	for _, room := range m.rooms {
		c := roomMap[room]
		for i, site := range room.sides {
			switch s := site.(type) {
			case *Door:
				c.sides[i] = cloneDoor(s)
			case *Room:
				c.sides[i] = remap(s)
			default:
				c.sides[i] = cloneSite(site)
			}
		}
	}

	return clone
}
