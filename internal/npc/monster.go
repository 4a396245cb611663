// Package npc holds monster prototypes and spawns copies of them.
package npc

// Kind is the variety of a monster
type Kind string

const (
	KindMonster Kind = "monster"
	KindEyeball Kind = "eyeball"
)

// Monster is a creature that can be copied from a prototype.
// Redness only applies to eyeball monsters.
type Monster struct {
	Name    string
	Kind    Kind
	Health  int
	Level   int
	Redness int
}

// NewMonster creates a plain monster
func NewMonster(name string, health, level int) *Monster {
	return &Monster{
		Name:   name,
		Kind:   KindMonster,
		Health: health,
		Level:  level,
	}
}

// NewEyeballMonster creates an eyeball monster with the given redness
func NewEyeballMonster(name string, health, level, redness int) *Monster {
	return &Monster{
		Name:    name,
		Kind:    KindEyeball,
		Health:  health,
		Level:   level,
		Redness: redness,
	}
}

// IsEyeball returns true for eyeball monsters
func (m *Monster) IsEyeball() bool {
	return m.Kind == KindEyeball
}

// Clone returns an independent copy of the monster
func (m *Monster) Clone() *Monster {
	clone := *m
	return &clone
}
