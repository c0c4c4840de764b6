package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"adforge/internal/app/bootstrap"
)

// Worker process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring.
// 3) Start the stale source sweep loop.
func main() {
	_ = godotenv.Load()

	log.Println("adforge worker starting")
	app, err := bootstrap.BuildWorker()
	if err != nil {
		log.Fatalf("bootstrap worker failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("worker shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("adforge worker stopped with error: %v", err)
	}
}
