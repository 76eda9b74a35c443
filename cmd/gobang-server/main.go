package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gobang/internal/game"
	"gobang/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", "games.db", "sqlite database for finished games")
	flag.Parse()

	controller := server.NewGameController(game.DefaultGameSettings())
	store, err := server.OpenGameStore(*dbPath)
	if err != nil {
		log.Fatalf("[server] open game store: %v", err)
	}
	defer store.Close()

	hub := server.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx.Done())

	// Drive AI turns; archive the game once it finishes.
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		archived := false
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if controller.Tick() {
					if entry, ok := controller.LatestHistoryEntry(); ok {
						hub.NotifyHistory(entry)
					}
					hub.NotifyStatus(controller)
				}
				status := controller.State().Status
				if status == game.StatusRunning || status == game.StatusNotStarted {
					archived = false
				} else if !archived && controller.State().HasLastMove {
					if id, err := store.SaveFinished(controller); err == nil {
						log.Printf("[server] archived game %s", id)
					}
					archived = true
				}
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		server.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		server.WriteJSON(w, http.StatusOK, server.ControllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings server.GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			server.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := server.SettingsFromDTO(payload.Settings, game.DefaultGameSettings())
		controller.StartGame(settings)
		server.WriteJSON(w, http.StatusOK, server.ControllerStatus(controller))
		hub.NotifyReset(controller)
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		controller.Reset(controller.Settings())
		server.WriteJSON(w, http.StatusOK, server.ControllerStatus(controller))
		hub.NotifyReset(controller)
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			X int `json:"x"`
			Y int `json:"y"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			server.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := controller.ApplyHumanMove(game.Move{X: payload.X, Y: payload.Y})
		if !applied {
			server.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		if entry, ok := controller.LatestHistoryEntry(); ok {
			hub.NotifyHistory(entry)
		}
		hub.NotifyStatus(controller)
		server.WriteJSON(w, http.StatusOK, server.ControllerStatus(controller))
	})

	r.Post("/api/undo", func(w http.ResponseWriter, r *http.Request) {
		undone := controller.Undo()
		if undone == 0 {
			server.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "nothing to undo"})
			return
		}
		hub.NotifyUndo(undone, controller)
		server.WriteJSON(w, http.StatusOK, server.ControllerStatus(controller))
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Config *game.Config `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			server.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			controller.UpdateConfig(*payload.Config)
		}
		server.WriteJSON(w, http.StatusOK, server.ControllerStatus(controller))
	})

	r.Get("/api/games", func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		records, err := store.RecentGames(limit)
		if err != nil {
			server.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "store unavailable"})
			return
		}
		server.WriteJSON(w, http.StatusOK, map[string]any{"games": records})
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		server.ServeWS(hub, controller, w, r)
	})

	httpServer := &http.Server{
		Addr:    *addr,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Printf("[server] listening on %s", *addr)
	select {
	case <-sigCtx.Done():
		log.Printf("[server] shutdown signal received")
	case err, ok := <-serverErrCh:
		if ok {
			log.Printf("[server] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[server] graceful shutdown failed: %v", err)
	}
	cancel()
}
