package main

import (
	"fmt"
	"log"

	"github.com/pverales/rosterd/config"
	"github.com/pverales/rosterd/demo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app := demo.NewApp(demo.NewStore(), demo.NewFetcher(0))

	if err := app.Listen(fmt.Sprintf(":%d", cfg.DemoPort)); err != nil {
		log.Fatalf("demo server stopped: %v", err)
	}
}
