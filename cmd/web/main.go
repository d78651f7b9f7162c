package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/minaorangina/canary/internal/config"
	"github.com/minaorangina/canary/internal/logging"
	"github.com/minaorangina/canary/server"
	"github.com/minaorangina/canary/store"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("could not set up logging")
	}

	s := server.NewServer(store.NewInMemoryGameStore(), server.ServerOpts{
		Logger:         logger,
		MaxTurnsFactor: cfg.MaxTurnsFactor,
	})

	// no write timeout: a websocket stream lasts a whole game
	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     handlers.CombinedLoggingHandler(os.Stdout, s),
		ReadTimeout: readTimeout,
	}

	logger.WithField("addr", srv.Addr).Info("listening")
	logger.Fatal(srv.ListenAndServe())
}
