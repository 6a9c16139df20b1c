package main

import (
	"context"
	"log"
	"os"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/buildinfo"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/cli"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
