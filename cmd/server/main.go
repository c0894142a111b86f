// Command server runs the aruuz-nigar HTTP API: POST /scan analyzes Urdu
// verse lines, GET /heartbeat and GET /health report service state.
package main

import (
	"context"
	"log"

	"github.com/tariquesani/aruuz-nigar/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
