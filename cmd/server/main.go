package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wordrush"
	"wordrush/internal/config"
	"wordrush/internal/events"
	"wordrush/internal/game"
	"wordrush/internal/store"
	"wordrush/internal/ws"
)

func main() {
	// Load server configuration
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	log.Printf("Loaded configuration: %d rounds, %ds turns", cfg.Game.Rounds, cfg.Game.TurnDuration)

	// Fail fast on a bad embedded deck
	deck, err := game.NewDeck(wordrush.CardsJSON)
	if err != nil {
		log.Fatal("Failed to load card deck: ", err)
	}
	log.Printf("Loaded deck %q with %d cards", deck.Name(), deck.Size())

	bus := events.NewBus()
	engine := game.NewEngine(deck, bus, game.Options{
		CountdownSeconds:    cfg.Game.CountdownSeconds,
		AllowNegativeScores: cfg.Game.AllowNegativeScores,
	})

	s := store.NewMemoryStore(cfg.Server.RoomCodeLength, cfg.Server.RoomTimeout, game.Settings{
		Rounds:       cfg.Game.Rounds,
		TurnDuration: cfg.Game.TurnDuration,
	})

	reaperCtx, stopReaper := context.WithCancel(context.Background())
	defer stopReaper()
	s.StartReaper(reaperCtx)

	h := ws.New(s, engine, bus)
	r := ws.SetupRouter(h, cfg, nil)

	addr := cfg.Server.Host + ":" + cfg.Server.Port

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout, // 0 for websocket support
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server gracefully stopped")
}
