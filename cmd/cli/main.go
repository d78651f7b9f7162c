package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/minaorangina/canary/engine"
	"github.com/minaorangina/canary/internal/config"
	"github.com/minaorangina/canary/internal/logging"
	"github.com/minaorangina/canary/records"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("could not set up logging")
	}

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("simulation failed")
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logrus.Logger) error {
	file, err := os.Create(cfg.RecordsPath)
	if err != nil {
		return fmt.Errorf("could not create records file: %w", err)
	}
	defer file.Close()

	buffered := bufio.NewWriter(file)
	writer := records.NewWriter(buffered)

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		NumPlayers:        cfg.Players,
		Seed:              cfg.Seed,
		MaxTurnsFactor:    cfg.MaxTurnsFactor,
		CheckConservation: true,
		Observers: []engine.Observer{
			engine.NewTraceObserver(logger),
			engine.NewRecordObserver(writer),
		},
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, runErr := ge.Start(ctx)

	// keep whatever was recorded, even for a failed game
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("could not write records: %w", err)
	}

	entry := logger.WithFields(logrus.Fields{
		"game_id": res.GameID,
		"seed":    res.Seed,
		"turns":   res.Turns,
		"records": writer.Count(),
		"path":    cfg.RecordsPath,
	})
	if runErr != nil {
		entry.WithField("state", res.State).Warn("simulation stopped")
		return runErr
	}

	entry.WithField("winner", res.Winner+1).Info("simulation finished")
	return nil
}
