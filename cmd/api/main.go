package main

import (
	"context"
	"log"

	"resume-intake/internal/bootstrap"
	"resume-intake/internal/shared/config"
	"resume-intake/internal/shared/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Close()

	r := server.NewRouter(app.Handler)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting intake dev server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
