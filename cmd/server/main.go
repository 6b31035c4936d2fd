package main

import (
	"context"
	"log"

	"github.com/radblock/gifgate/internal/server"
	"github.com/radblock/gifgate/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	app.Run(context.Background())
}
