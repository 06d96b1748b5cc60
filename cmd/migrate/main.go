package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"stockfolio/internal/config"
	"stockfolio/internal/database"
	"stockfolio/internal/logger"
)

const usage = "usage: migrate <up|down|version|audit> [N]"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if err := run(cfg, os.Args[1:]); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New(usage)
	}

	manager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return err
	}

	switch command := args[0]; command {
	case "up":
		return manager.Up()

	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid step count: %w", err)
			}
		}
		return manager.Down(steps)

	case "version":
		version, dirty, err := manager.Version()
		if err != nil {
			return err
		}
		logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)

	case "audit":
		report, err := manager.Audit(context.Background())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if !report.Clean() {
			return fmt.Errorf("audit found %d invalid row(s)", len(report.Rows))
		}

	default:
		return fmt.Errorf("unknown command: %s (%s)", command, usage)
	}

	return nil
}
