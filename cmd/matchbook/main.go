package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/efreitasn/matchbook/internal/audit"
	"github.com/efreitasn/matchbook/internal/config"
	"github.com/efreitasn/matchbook/internal/domain"
	"github.com/efreitasn/matchbook/internal/engine"
	"github.com/efreitasn/matchbook/internal/service"
	"github.com/efreitasn/matchbook/internal/store"
)

func main() {
	// Optional .env for local runs.
	_ = godotenv.Load()

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up slog logger with configured level.
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Append-only activity log.
	auditLog, err := audit.OpenFileLog(cfg.AuditLogPath)
	if err != nil {
		logger.Error("failed to open audit log", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer auditLog.Close()

	// Book with the midpoint execution price convention.
	book := engine.New(engine.MidpointPrice(cfg.PriceScale))
	eng := service.NewMatchingEngine(book, auditLog, store.NewOrderStore(), store.NewTradeStore())

	submit := func(side domain.Side, price string, qty int64) []*domain.Trade {
		order, err := domain.NewOrder(side, domain.MustPrice(price), qty)
		if err != nil {
			logger.Error("failed to construct order", slog.String("error", err.Error()))
			os.Exit(1)
		}
		trades, err := eng.Submit(order)
		if err != nil {
			logger.Error("submission failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("order submitted",
			slog.Int64("seq", order.Seq),
			slog.String("side", string(side)),
			slog.String("price", price),
			slog.Int64("qty", qty),
			slog.Int("trades", len(trades)),
		)
		return trades
	}

	// Demonstration script.
	submit(domain.SideBuy, "150", 10)

	trades := submit(domain.SideSell, "149.00", 100)
	fmt.Println("Trades after second order:")
	for _, t := range trades {
		fmt.Println(t)
	}

	// Partial fills.
	submit(domain.SideBuy, "151.00", 200)
	submit(domain.SideSell, "150.50", 50)

	// Add more and show the book.
	submit(domain.SideSell, "152.00", 200)

	fmt.Println("All trades so far:")
	for _, t := range eng.Trades() {
		fmt.Println(t)
	}

	fmt.Printf("Final order book snapshot in the activity log (%s).\n", cfg.AuditLogPath)
}
