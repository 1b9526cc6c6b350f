package main

import (
	"context"
	"log"

	"github.com/enzomv1999/GloboClima/internal/server"
	"github.com/enzomv1999/GloboClima/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
