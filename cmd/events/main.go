package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"geotagger-be/internal/config"
	"geotagger-be/pkg/events"
	"geotagger-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Tails the GEOTAGGER JetStream stream and prints every mirrored event.
// Useful when debugging the websocket layer without a connected client.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}
	cfg := config.Load()

	sub, err := nats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Fatalf("failed to connect to NATS at %s: %v", cfg.App.NatsURL, err)
	}
	defer sub.Close()

	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	err = sub.Subscribe("events.>", "event-tail", func(ctx context.Context, event events.Event) error {
		fmt.Printf("%s %s %v\n", green("[EVT]"), cyan(event.EventType()), event.Payload())
		return nil
	})
	if err != nil {
		log.Fatalf("failed to subscribe: %v", err)
	}

	fmt.Println("Tailing events.> (Ctrl+C to stop)")
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
