package main

import (
	"log"

	"github.com/MrSnakeDoc/alumnet/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ alumnet failed to start: %v", err)
	}
}
