package maze

import "github.com/KostyaKondratenko/DesignPatterns/internal/logger"

// Door joins two rooms. A door is shared by both rooms it connects and
// owned by the maze it was registered with.
type Door struct {
	first      *Room
	second     *Room
	needsSpell bool
}

// NewDoor creates a door between first and second
func NewDoor(first, second *Room) *Door {
	return &Door{first: first, second: second}
}

// NewDoorNeedingSpell creates a door that only opens with a spell
func NewDoorNeedingSpell(first, second *Room) *Door {
	return &Door{first: first, second: second, needsSpell: true}
}

// Rooms returns both rooms joined by the door
func (d *Door) Rooms() (*Room, *Room) {
	return d.first, d.second
}

// AddRooms reattaches the door to a new pair of rooms
func (d *Door) AddRooms(first, second *Room) {
	d.first = first
	d.second = second
}

// NeedsSpell reports whether the door only opens with a spell
func (d *Door) NeedsSpell() bool {
	return d.needsSpell
}

// OtherSide returns the room on the far side of the door from room,
// or nil if room is not one of the door's endpoints.
func (d *Door) OtherSide(room *Room) *Room {
	switch room {
	case d.first:
		return d.second
	case d.second:
		return d.first
	}
	return nil
}

func (d *Door) Enter() {
	if d.needsSpell {
		logger.Debug("Door requires a spell")
		return
	}
	logger.Debug("Opened door", "from", roomNumber(d.first), "to", roomNumber(d.second))
}

// Clone copies the door. The copy references the same rooms; use AddRooms
// to attach it elsewhere.
func (d *Door) Clone() *Door {
	return &Door{first: d.first, second: d.second, needsSpell: d.needsSpell}
}

func roomNumber(r *Room) int {
	if r == nil {
		return 0
	}
	return r.number
}
