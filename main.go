// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/metrics"
	"github.com/danielhkuo/quickly-vote/queue"
	"github.com/danielhkuo/quickly-vote/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// Connect the vote queue
	q, err := openQueue(cfg)
	if err != nil {
		slog.Error("queue setup failed", "backend", cfg.QueueBackend, "error", err)
		os.Exit(1)
	}
	defer q.Close()
	slog.Info("Vote queue ready", "queue", q.Target())

	// Metrics are always collected; exposing them is optional
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewPrometheus(reg, "")

	voteHandler := handlers.NewVoteHandler(q, cfg, handlers.WithMetrics(recorder))

	server := &http.Server{
		Handler:           router.NewRouter(voteHandler),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var operator *http.Server
	if cfg.MetricsPort > 0 {
		operator = &http.Server{
			Handler:           router.NewOperatorRouter(reg, q),
			Addr:              ":" + strconv.Itoa(cfg.MetricsPort),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			slog.Info("Operator endpoint listening", "port", cfg.MetricsPort)
			if err := operator.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Operator server closed", "error", err)
			}
		}()
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if operator != nil {
			operator.Shutdown(ctx)
		}
		server.Shutdown(ctx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "options", []string{cfg.OptionA, cfg.OptionB})
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openQueue builds the queue client for the configured backend
func openQueue(cfg cliparse.Config) (queue.Queue, error) {
	switch cfg.QueueBackend {
	case cliparse.BackendPostgres, cliparse.BackendSQLite:
		conn, err := db.Open(cfg.QueueBackend, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.CreateSchema(conn, cfg.QueueBackend); err != nil {
			conn.Close()
			return nil, err
		}
		return queue.NewSQLQueue(conn, cfg.QueueBackend, cfg.QueueKey), nil
	default:
		// Redis connects lazily; an unreachable server only costs votes
		return queue.NewRedisQueue(queue.RedisOptions{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Key:      cfg.QueueKey,
			Timeout:  cfg.QueueTimeout,
		}), nil
	}
}
