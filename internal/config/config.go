package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Maze construction strategies selectable from configuration
const (
	StrategyStandard  = "standard"  // StandardBuilder
	StrategyCounting  = "counting"  // CountingBuilder
	StrategyFactory   = "factory"   // StandardFactory
	StrategyEnchanted = "enchanted" // EnchantedFactory
	StrategyPrototype = "prototype" // PrototypeFactory with plain parts
	StrategyBombed    = "bombed"    // PrototypeFactory with bombed walls
)

// Strategies returns every known strategy name
func Strategies() []string {
	return []string{
		StrategyStandard,
		StrategyCounting,
		StrategyFactory,
		StrategyEnchanted,
		StrategyPrototype,
		StrategyBombed,
	}
}

// PlaygroundConfig holds settings for every page of the playground.
type PlaygroundConfig struct {
	Maze     MazeConfig     `yaml:"maze"`
	Kitchen  KitchenConfig  `yaml:"kitchen"`
	Mail     MailConfig     `yaml:"mail"`
	Bestiary BestiaryConfig `yaml:"bestiary"`
}

// MazeConfig holds maze construction settings.
type MazeConfig struct {
	// Strategy names the builder or factory used to construct the maze.
	Strategy string `yaml:"strategy"`

	// LayoutFile is an optional YAML layout plan to build instead of the
	// default two-room maze.
	LayoutFile string `yaml:"layout_file"`

	// ExportFile is an optional path the finished maze is written to as YAML.
	ExportFile string `yaml:"export_file"`

	// Incantation is the spell cast on rooms by the enchanted factory.
	Incantation string `yaml:"incantation"`
}

// KitchenConfig holds hamburger kitchen settings.
type KitchenConfig struct {
	// SoldOut lists meats the kitchen cannot serve
	SoldOut []string `yaml:"sold_out"`
}

// MailConfig holds applicant email settings.
type MailConfig struct {
	SenderEmail string `yaml:"sender_email"`
}

// BestiaryConfig holds monster prototype settings.
type BestiaryConfig struct {
	MonstersFile string `yaml:"monsters_file"`
}

// DefaultConfig returns a PlaygroundConfig with the built-in demo settings.
func DefaultConfig() *PlaygroundConfig {
	return &PlaygroundConfig{
		Maze: MazeConfig{
			Strategy:    StrategyStandard,
			Incantation: "aperio",
		},
		Kitchen: KitchenConfig{
			SoldOut: []string{"kitten"},
		},
		Mail: MailConfig{
			SenderEmail: "hr@yourcompany.com",
		},
		Bestiary: BestiaryConfig{
			MonstersFile: "data/monsters.yaml",
		},
	}
}

// LoadConfig loads playground configuration from a YAML file and applies
// environment variable overrides. If the file doesn't exist the defaults
// are used.
func LoadConfig(path string) (*PlaygroundConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return config, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (c *PlaygroundConfig) applyEnv() {
	if strategy := os.Getenv("PLAYGROUND_STRATEGY"); strategy != "" {
		c.Maze.Strategy = strategy
	}
	if layout := os.Getenv("PLAYGROUND_LAYOUT"); layout != "" {
		c.Maze.LayoutFile = layout
	}
	if sender := os.Getenv("PLAYGROUND_SENDER_EMAIL"); sender != "" {
		c.Mail.SenderEmail = sender
	}
}

// Validate checks that the configured strategy is one the playground knows.
func (c *PlaygroundConfig) Validate() error {
	c.Maze.Strategy = strings.ToLower(strings.TrimSpace(c.Maze.Strategy))
	if c.Maze.Strategy == "" {
		c.Maze.Strategy = StrategyStandard
	}
	for _, s := range Strategies() {
		if s == c.Maze.Strategy {
			return nil
		}
	}
	return fmt.Errorf("unknown maze strategy %q (want one of: %s)", c.Maze.Strategy, strings.Join(Strategies(), ", "))
}
