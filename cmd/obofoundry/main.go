package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := LoadConfig()
	if err != nil {
		logrus.Errorf("failed to load configuration: %v", err)
		os.Exit(1)
	}
	if err := NewRootCmd(cfg).ExecuteContext(ctx); err != nil {
		logrus.Errorf("obofoundry: %v", err)
		os.Exit(1)
	}
}
