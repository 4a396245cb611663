package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/KostyaKondratenko/DesignPatterns/internal/config"
	"github.com/KostyaKondratenko/DesignPatterns/internal/logger"
	"github.com/joho/godotenv"
)

// Pages that can be run
const (
	pageAll      = "all"
	pageMaze     = "maze"
	pageKitchen  = "kitchen"
	pageMail     = "mail"
	pageBestiary = "bestiary"
)

func main() {
	configFile := flag.String("config", "data/playground.yaml", "Path to playground config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	page := flag.String("page", pageAll, "Page to run: all, maze, kitchen, mail, bestiary")
	strategy := flag.String("strategy", "", "Maze strategy: "+strings.Join(config.Strategies(), ", "))
	layoutFile := flag.String("layout", "", "Maze layout plan YAML file (default: two-room maze)")
	exportFile := flag.String("export", "", "Write the finished maze to this YAML file")
	flag.Parse()

	// .env is optional; its absence is only worth a debug line once logging is up
	envErr := godotenv.Load()

	logConfig, err := logger.LoadConfig(*loggingConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring logging config: %v\n", err)
	}
	if err := logger.Initialize(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	if envErr != nil {
		logger.Debug("No .env file loaded", "error", envErr)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags win over file and environment
	if *strategy != "" {
		cfg.Maze.Strategy = *strategy
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *layoutFile != "" {
		cfg.Maze.LayoutFile = *layoutFile
	}
	if *exportFile != "" {
		cfg.Maze.ExportFile = *exportFile
	}

	logger.Info("Starting design patterns playground", "page", *page, "strategy", cfg.Maze.Strategy)

	pages := map[string]func(*config.PlaygroundConfig) error{
		pageMaze:     runMaze,
		pageKitchen:  runKitchen,
		pageMail:     runMail,
		pageBestiary: runBestiary,
	}

	order := []string{pageMaze, pageKitchen, pageMail, pageBestiary}
	if *page != pageAll {
		if _, ok := pages[*page]; !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown page %q\n", *page)
			os.Exit(1)
		}
		order = []string{*page}
	}

	for _, name := range order {
		fmt.Printf("=== %s ===\n", strings.ToUpper(name[:1])+name[1:])
		if err := pages[name](cfg); err != nil {
			logger.Error("Page failed", "page", name, "error", err)
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Println()
	}
}
