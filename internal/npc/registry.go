package npc

import (
	"errors"
	"fmt"
	"sort"

	"github.com/KostyaKondratenko/DesignPatterns/internal/logger"
)

// ErrUnknownMonster is returned when spawning an id with no prototype
var ErrUnknownMonster = errors.New("unknown monster")

// Registry holds monster prototypes by id and spawns clones of them
type Registry struct {
	prototypes map[string]*Monster
}

func NewRegistry() *Registry {
	return &Registry{prototypes: make(map[string]*Monster)}
}

// NewRegistryFromConfig registers a prototype for every definition
func NewRegistryFromConfig(config *MonstersConfig) *Registry {
	r := NewRegistry()
	if config == nil {
		return r
	}
	for id, def := range config.Monsters {
		r.Register(id, CreateMonsterFromDefinition(def))
	}
	return r
}

// Register stores a copy of prototype under id, replacing any previous one
func (r *Registry) Register(id string, prototype *Monster) {
	r.prototypes[id] = prototype.Clone()
}

// Spawn returns a fresh copy of the prototype registered under id
func (r *Registry) Spawn(id string) (*Monster, error) {
	prototype, ok := r.prototypes[id]
	if !ok {
		return nil, fmt.Errorf("spawn %q: %w", id, ErrUnknownMonster)
	}
	monster := prototype.Clone()
	logger.Debug("Monster spawned", "id", id, "name", monster.Name, "level", monster.Level)
	return monster, nil
}

// IDs returns the registered prototype ids in sorted order
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.prototypes))
	for id := range r.prototypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
