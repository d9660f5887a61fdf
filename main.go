package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/example/landing/internal/config"
	"github.com/example/landing/internal/database"
	"github.com/example/landing/internal/excel"
	"github.com/example/landing/internal/session"
	"github.com/example/landing/pkg/models"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg := config.Load()

	if err := database.Connect(); err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer database.Close()

	// Load the word book on first run, or refresh it when a file is given
	if cfg.VocabularyFile != "" {
		importConfig := excel.DefaultImportConfig()
		importConfig.FilePath = cfg.VocabularyFile
		importConfig.VocabularyName = models.VocabularyBeginner
		importConfig.Description = "CET-4 word book"

		result, err := excel.ImportVocabulary(importConfig)
		if err != nil {
			log.Fatalw("failed to import vocabulary", "file", cfg.VocabularyFile, "error", err)
		}
		log.Infow("vocabulary imported",
			"file", cfg.VocabularyFile,
			"processed", result.TotalProcessed,
			"created", result.Created,
			"skipped", result.Skipped,
		)
	}

	engine := session.New(session.NewDateClock(), log)
	engine.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Info("session engine started")

	for {
		select {
		case state := <-engine.States():
			switch state.Kind {
			case session.StateNone:
				log.Infow("session state", "state", "none")
			case session.StateLearning:
				log.Infow("session state", "state", "learning", "phase", state.Phase)
			case session.StatePlanFinished:
				log.Infow("session state", "state", "plan finished")
			case session.StateError:
				log.Warnw("session state", "state", "error", "code", state.Code)
			}
		case sig := <-sigChan:
			log.Infow("shutting down", "signal", sig)
			engine.Stop()
			return
		}
	}
}
