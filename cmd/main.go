package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	dotenv "github.com/joho/godotenv"
	envconf "github.com/sethvargo/go-envconfig"

	"github.com/luckyComet55/whitebox-sim/internal/bank"
	"github.com/luckyComet55/whitebox-sim/internal/handler"
	"github.com/luckyComet55/whitebox-sim/internal/rules"
)

type AppConfig struct {
	Env           string  `env:"ENV, default=dev"`
	BankUser      string  `env:"BANK_USER, default=user123"`
	BankPassword  string  `env:"BANK_PASSWORD, default=pass123"`
	BankBalance   float64 `env:"BANK_BALANCE, default=1000"`
	AdminUsername string  `env:"ADMIN_USERNAME, default=admin"`
	AdminPassword string  `env:"ADMIN_PASSWORD, default=admin123"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := dotenv.Load(); err != nil {
		log.Println("Warning! No .env file found")
	}

	if err := newRootCmd(envconf.OsLookuper()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig(ctx context.Context, lookuper envconf.Lookuper) (AppConfig, error) {
	var c AppConfig
	if err := envconf.ProcessWith(ctx, &envconf.Config{Target: &c, Lookuper: lookuper}); err != nil {
		return AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return c, nil
}

func configureLogger(c AppConfig) (*slog.Logger, error) {
	var logger *slog.Logger
	switch c.Env {
	case "dev":
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case "prod":
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return nil, fmt.Errorf("incorrect env type: %s. possible values: dev, prod", c.Env)
	}
	return logger, nil
}

func newCommandHandler(c AppConfig, logger *slog.Logger) *handler.CommandHandler {
	bs := bank.NewBankingSystem(logger.With("component", "bank"), bank.Account{
		Username: c.BankUser,
		Password: c.BankPassword,
		Balance:  c.BankBalance,
	})
	auth := rules.NewAuthenticator(c.AdminUsername, c.AdminPassword)

	return handler.NewCommandHandler(bs, auth, logger.With("component", "handler"))
}
