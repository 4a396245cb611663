package maze

import "github.com/KostyaKondratenko/DesignPatterns/internal/logger"

// Spell is the enchantment an enchanted room must be entered with
type Spell struct {
	Incantation string
}

// Room is a numbered maze cell with one map site per side.
// Sides start unset.
type Room struct {
	number int
	sides  [numDirections]MapSite
	spell  *Spell // nil for ordinary rooms
}

// NewRoom creates a room with all sides unset
func NewRoom(number int) *Room {
	return &Room{number: number}
}

// NewEnchantedRoom creates a room that carries a spell
func NewEnchantedRoom(number int, spell Spell) *Room {
	return &Room{number: number, spell: &spell}
}

// Number returns the room number
func (r *Room) Number() int {
	return r.number
}

// SetNumber renumbers the room, used after cloning a prototype
func (r *Room) SetNumber(number int) {
	r.number = number
}

// Spell returns the room's enchantment, or nil if the room is ordinary
func (r *Room) Spell() *Spell {
	return r.spell
}

// GetSide returns the site on the given side, or nil if the side is unset
func (r *Room) GetSide(d Direction) MapSite {
	if !d.valid() {
		return nil
	}
	return r.sides[d]
}

// SetSide places site on the given side, replacing whatever was there
func (r *Room) SetSide(d Direction, site MapSite) {
	if !d.valid() {
		return
	}
	r.sides[d] = site
}

func (r *Room) Enter() {
	if r.spell != nil {
		logger.Debug("Entering enchanted room", "room", r.number, "incantation", r.spell.Incantation)
		return
	}
	logger.Debug("Entering room", "room", r.number)
}

// Clone returns an independent copy of the room. Walls are copied, doors
// are copied with their endpoints left pointing at the original rooms.
// Maze.Clone rewires doors to the cloned rooms.
func (r *Room) Clone() *Room {
	clone := r.cloneBare()
	for i, site := range r.sides {
		clone.sides[i] = cloneSite(site)
	}
	return clone
}

// cloneBare copies the room number and spell, leaving all sides unset
func (r *Room) cloneBare() *Room {
	clone := &Room{number: r.number}
	if r.spell != nil {
		spell := *r.spell
		clone.spell = &spell
	}
	return clone
}

// cloneSite copies the sites this package knows how to copy.
// Rooms placed as sides are referenced, not owned, so they are kept as is.
func cloneSite(site MapSite) MapSite {
	switch s := site.(type) {
	case *Wall:
		return s.Clone()
	case *Door:
		return s.Clone()
	default:
		return site
	}
}
