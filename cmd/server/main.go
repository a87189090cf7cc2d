// Command server runs the galaxy seed-scan backend: a loopback websocket
// endpoint that either generates one galaxy from a descriptor or scans a
// seed range in parallel and streams matches back (spec.md §1).
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/tojo17/seedfinder/internal/config"
	"github.com/tojo17/seedfinder/internal/ws"
)

func main() {
	log.Println("Starting...")

	cfg := config.Default()

	if count, err := cpu.Counts(true); err == nil {
		log.Printf("Available logical cores: %d.", count)
	} else {
		log.Printf("Available logical cores: unknown (%v).", err)
	}

	listener := ws.NewListener(cfg.Server.Addr(), cfg.Scan.MaxConcurrency, cfg.Scan.BatchSize)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		os.Exit(0)
	}()

	log.Println("Started.")
	log.Println("You may now turn on native mode to search.")

	if err := listener.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
