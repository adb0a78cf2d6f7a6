package main

import (
	"log"

	"github.com/fundstracker/funds-tracker/internal/app"
)

func main() {
	w, err := app.NewWorker()
	if err != nil {
		log.Fatalf("Failed to initialize worker: %v", err)
	}

	if err := w.Run(); err != nil {
		log.Fatalf("Failed to run worker: %v", err)
	}
}
