package main

import (
	"fmt"

	"github.com/KostyaKondratenko/DesignPatterns/internal/config"
	"github.com/KostyaKondratenko/DesignPatterns/internal/kitchen"
	"github.com/KostyaKondratenko/DesignPatterns/internal/layout"
	"github.com/KostyaKondratenko/DesignPatterns/internal/logger"
	"github.com/KostyaKondratenko/DesignPatterns/internal/mail"
	"github.com/KostyaKondratenko/DesignPatterns/internal/maze"
	"github.com/KostyaKondratenko/DesignPatterns/internal/npc"
)

// newFactory returns the factory for a factory strategy, or nil if the
// strategy is a builder.
func newFactory(cfg config.MazeConfig) maze.Factory {
	switch cfg.Strategy {
	case config.StrategyFactory:
		return maze.NewStandardFactory()
	case config.StrategyEnchanted:
		return maze.NewEnchantedFactory(cfg.Incantation)
	case config.StrategyPrototype:
		return maze.NewSimplePrototypeFactory()
	case config.StrategyBombed:
		return maze.NewBombedPrototypeFactory()
	}
	return nil
}

// newBuilder returns a builder for any strategy; factories are wrapped
func newBuilder(cfg config.MazeConfig) maze.Builder {
	switch cfg.Strategy {
	case config.StrategyCounting:
		return maze.NewCountingBuilder()
	case config.StrategyStandard:
		return maze.NewStandardBuilder()
	}
	return maze.NewFactoryBuilder(newFactory(cfg))
}

func runMaze(cfg *config.PlaygroundConfig) error {
	game := maze.NewGame()
	name := "two rooms"

	var m *maze.Maze
	var builder maze.Builder

	switch {
	case cfg.Maze.LayoutFile != "":
		plan, err := layout.LoadFromYAML(cfg.Maze.LayoutFile)
		if err != nil {
			return err
		}
		name = plan.Name
		builder = newBuilder(cfg.Maze)
		m = plan.Apply(builder)
	case newFactory(cfg.Maze) != nil:
		m = game.CreateMaze(newFactory(cfg.Maze))
	default:
		builder = newBuilder(cfg.Maze)
		m = game.BuildMaze(builder)
	}

	fmt.Printf("Strategy: %s\n", cfg.Maze.Strategy)
	if counter, ok := builder.(*maze.CountingBuilder); ok {
		rooms, doors := counter.Counts()
		fmt.Printf("Maze has %d rooms and %d doors\n", rooms, doors)
		return nil
	}

	fmt.Printf("Maze %q has %d rooms and %d doors\n", name, m.RoomCount(), len(m.Doors()))
	for _, room := range m.Rooms() {
		fmt.Printf("  room %d: reaches %v\n", room.Number(), m.Reachable(room.Number()))
	}

	if cfg.Maze.ExportFile != "" {
		if err := layout.WriteYAML(m, name, cfg.Maze.ExportFile); err != nil {
			return err
		}
		fmt.Printf("Maze written to %s\n", cfg.Maze.ExportFile)
	}
	return nil
}

func runKitchen(cfg *config.PlaygroundConfig) error {
	soldOut := make([]kitchen.Meat, 0, len(cfg.Kitchen.SoldOut))
	for _, name := range cfg.Kitchen.SoldOut {
		meat, ok := kitchen.ParseMeat(name)
		if !ok {
			logger.Warning("Ignoring unknown sold out meat", "meat", name)
			continue
		}
		soldOut = append(soldOut, meat)
	}

	chef := kitchen.NewEmployee(soldOut)
	fmt.Println(kitchen.Consume(chef.CreateCombo1))
	fmt.Println(kitchen.Consume(chef.CreateKittenSpecial))
	return nil
}

func runMail(cfg *config.PlaygroundConfig) error {
	factory := mail.NewEmailFactory(cfg.Mail.SenderEmail)
	jackson := mail.JobApplicant{
		Name:         "Jackson",
		EmailAddress: "jacksonadams@gmail.com",
		Status:       mail.StatusNew,
	}

	for _, status := range []mail.Status{mail.StatusNew, mail.StatusInterview, mail.StatusHired} {
		jackson.Status = status
		fmt.Printf("%s\n\n", factory.CreateEmail(jackson))
	}
	return nil
}

func runBestiary(cfg *config.PlaygroundConfig) error {
	registry := npc.NewRegistry()

	monsters, err := npc.LoadMonstersFromYAML(cfg.Bestiary.MonstersFile)
	if err != nil {
		logger.Warning("Using built-in monster prototypes", "error", err)
		registry.Register("monster", npc.NewMonster("Monster", 700, 37))
		registry.Register("eyeball", npc.NewEyeballMonster("Eyeball Monster", 3002, 60, 999))
	} else {
		registry = npc.NewRegistryFromConfig(monsters)
	}

	for _, id := range registry.IDs() {
		monster, err := registry.Spawn(id)
		if err != nil {
			return err
		}
		fmt.Printf("Watch out! That %s's level is %d!\n", monster.Name, monster.Level)
	}
	return nil
}
