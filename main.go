package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"starchart/internal/database"
	"starchart/internal/galaxy"
	"starchart/internal/log"
	"starchart/internal/tui"
)

const defaultFaction = "WYVERN SUPREMACY"

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Error("GLOBAL PANIC recovered", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "Application crashed. See the debug log for details.\n")
			os.Exit(1)
		}
	}()

	// .env is optional; real environment variables win either way.
	godotenv.Load()

	logPath := envOr("STARCHART_LOG", "starchart_debug.log")
	if err := log.SetFileOutput(logPath); err != nil {
		fmt.Printf("Warning: Could not configure debug logging to file: %v\n", err)
	}
	defer log.Close()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println("Starchart Viewer")
		fmt.Println("This application requires a terminal/TTY to run properly.")
		os.Exit(1)
	}

	chartPath := envOr("STARCHART_DB", "")
	if len(os.Args) > 1 {
		chartPath = os.Args[1]
	}
	if chartPath == "" {
		fmt.Println("Usage: starchart <chart.db>")
		fmt.Println("(or set STARCHART_DB in the environment or a .env file)")
		os.Exit(1)
	}

	faction := envOr("STARCHART_FACTION", defaultFaction)

	repo := galaxy.NewRepository(func() (galaxy.RowSource, error) {
		return database.Open(chartPath)
	}, faction)

	warnings, err := repo.Reload()
	if err != nil {
		fmt.Printf("Error loading chart: %v\n", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		log.Warn("load warning", "warning", warning)
	}
	logChartSchema(chartPath)

	app := tui.NewApp(repo, faction, warnings)
	if err := app.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// logChartSchema records the chart's table layout for diagnosing
// unexpected column sets. Best effort only.
func logChartSchema(path string) {
	store, err := database.Open(path)
	if err != nil {
		return
	}
	defer store.Close()

	schema, err := store.Schema()
	if err != nil {
		log.Debug("could not read chart schema", "error", err)
		return
	}
	for table, columns := range schema {
		names := make([]string, len(columns))
		for i, column := range columns {
			names[i] = column.Name
		}
		log.Debug("chart schema", "table", table, "columns", names)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
