package npc

import (
	"fmt"
	"os"

	"github.com/KostyaKondratenko/DesignPatterns/internal/logger"
	"gopkg.in/yaml.v3"
)

// MonsterDefinition represents a monster prototype from the YAML file
type MonsterDefinition struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`    // monster or eyeball
	Health  int    `yaml:"health"`
	Level   int    `yaml:"level"`
	Redness int    `yaml:"redness"` // eyeball only
}

// MonstersConfig represents the structure of the monsters.yaml file
type MonstersConfig struct {
	Monsters map[string]MonsterDefinition `yaml:"monsters"`
}

// LoadMonstersFromYAML loads monster prototypes from a YAML file
func LoadMonstersFromYAML(filename string) (*MonstersConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read monsters file: %w", err)
	}

	var config MonstersConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse monsters YAML: %w", err)
	}

	for id, def := range config.Monsters {
		switch Kind(def.Kind) {
		case KindMonster, KindEyeball:
		case "":
			def.Kind = string(KindMonster)
			config.Monsters[id] = def
		default:
			return nil, fmt.Errorf("monster %q has unknown kind %q", id, def.Kind)
		}

		// Only eyeballs have redness
		if Kind(def.Kind) == KindMonster && def.Redness != 0 {
			logger.Warning("Monster auto-correction applied",
				"monster_id", id,
				"issue", "redness set on a plain monster",
				"action", "set redness=0")
			def.Redness = 0
			config.Monsters[id] = def
		}
	}

	return &config, nil
}

// CreateMonsterFromDefinition creates a monster from a MonsterDefinition
func CreateMonsterFromDefinition(def MonsterDefinition) *Monster {
	if Kind(def.Kind) == KindEyeball {
		return NewEyeballMonster(def.Name, def.Health, def.Level, def.Redness)
	}
	return NewMonster(def.Name, def.Health, def.Level)
}
