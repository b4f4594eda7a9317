package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/mnemo/internal/cli"
	"github.com/alexanderramin/mnemo/internal/db"
	"github.com/alexanderramin/mnemo/internal/intelligence"
	"github.com/alexanderramin/mnemo/internal/llm"
	"github.com/alexanderramin/mnemo/internal/repository"
	"github.com/alexanderramin/mnemo/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.mnemo/mnemo.db
	dbPath := os.Getenv("MNEMO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".mnemo", "mnemo.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	collections := repository.NewCollections(repository.NewSQLiteStore(database))

	// Wire intelligence services (only when LLM is enabled)
	llmCfg := llm.LoadConfig()
	var (
		generator intelligence.GenerateService
		scheduler intelligence.ScheduleService
		tutor     intelligence.ChatService
	)
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, observer)

		generator = intelligence.NewGenerateService(llmClient)
		scheduler = intelligence.NewScheduleService(llmClient)
		tutor = intelligence.NewChatService(llmClient)
	}

	var useCaseObserver service.UseCaseObserver
	if llmCfg.LogCalls {
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}
	actions := service.NewActions(generator, scheduler, tutor, useCaseObserver)

	app := &cli.App{
		Users:       service.NewUserService(collections),
		Decks:       service.NewDeckService(collections),
		Cards:       service.NewCardService(collections, actions),
		Actions:     actions,
		Collections: collections,
	}

	// Detect interactive terminal for the study and chat surfaces.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
