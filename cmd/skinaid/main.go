package main

import (
	"context"
	"log"

	"github.com/mkazarin/skinaid/internal/cli"
	"github.com/mkazarin/skinaid/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
