package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/tikodea/dashboard-go/pkg/interfaces/backend"
	"github.com/tikodea/dashboard-go/pkg/logging"
)

const usage = `Tikodea dashboard

Usage:
  dashboard list [-search q] [-favorites] [-tag t] [-skip n] [-limit n]
  dashboard show <video-id>
  dashboard favorite <video-id> <on|off>
  dashboard tags <video-id>
  dashboard chat <video-id>
  dashboard export [-dir path] <video-id>
  dashboard plan [-dir path] <video-id>
  dashboard watch [-interval duration]
`

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).Warn("Error loading .env file")
		}
	}

	// Initialize logger
	log := logrus.New()
	log.SetFormatter(logging.NewColoredTextFormatter())

	logLevel := os.Getenv("LOG_LEVEL")
	if level, err := logrus.ParseLevel(logLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	config, err := backend.NewBackendConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load backend config")
	}
	config.Logger = log

	client, err := backend.NewBackendClient(config)
	if err != nil {
		log.WithError(err).Fatal("Failed to create backend client")
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	app := &app{client: client, logger: log}
	ctx := context.Background()

	switch os.Args[1] {
	case "list":
		err = app.list(ctx, os.Args[2:])
	case "show":
		err = app.show(ctx, os.Args[2:])
	case "favorite":
		err = app.favorite(ctx, os.Args[2:])
	case "tags":
		err = app.tags(ctx, os.Args[2:])
	case "chat":
		err = app.chat(ctx, os.Args[2:])
	case "export":
		err = app.export(ctx, os.Args[2:])
	case "plan":
		err = app.plan(ctx, os.Args[2:])
	case "watch":
		err = app.watch(ctx, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.WithError(err).Fatal("Command failed")
	}
}

type app struct {
	client *backend.BackendClient
	logger *logrus.Logger
}
