// Package cli implements the moderk CLI commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/moderk/internal/assistant"
	"github.com/rcliao/moderk/internal/config"
	"github.com/rcliao/moderk/internal/gateway"
	"github.com/rcliao/moderk/internal/logging"
	"github.com/rcliao/moderk/internal/speech"
	"github.com/rcliao/moderk/internal/state"
	"github.com/rcliao/moderk/internal/store"
)

var (
	dbPath     string
	configPath string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "moderk",
	Short: "Arabic memory assistant",
	Long:  "مُدرك: an Arabic-first assistant for people with memory difficulties. Chat, reminders, memories and speech, backed by a local SQLite file.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $MODERK_DB or ~/.moderk/moderk.db)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $MODERK_CONFIG or ~/.moderk/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}
	return cfg, nil
}

// app is a fully wired assistant plus the resources it owns.
type app struct {
	*assistant.Assistant
	cfg *config.Config
	db  *store.SQLiteStore
	log *slog.Logger
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logging.New(cfg.Log)

	db, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	st, err := state.Open(ctx, db, state.WithLogger(log))
	if err != nil {
		db.Close()
		return nil, err
	}

	sp := speech.NewCoordinator(
		speech.LookupSynthesizer(cfg.Speech.SynthCommand),
		speech.LookupRecognizer(cfg.Speech.RecognizeCommand),
		speech.WithLogger(log),
		speech.WithLang(cfg.Speech.Lang),
	)
	gw := gateway.New(gateway.Config{
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
	}, gateway.WithLogger(log))

	return &app{
		Assistant: assistant.New(st, sp, gw, assistant.WithLogger(log)),
		cfg:       cfg,
		db:        db,
		log:       log,
	}, nil
}

func (a *app) Close() error {
	a.StopSpeaking()
	a.StopListening()
	return a.db.Close()
}

func mustOpenApp(cmd *cobra.Command) *app {
	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open", err)
	}
	return a
}

// openStore opens only the snapshot database, for commands that work on
// raw snapshots.
func openStore() (*store.SQLiteStore, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logging.New(cfg.Log)
	return store.NewSQLiteStore(cfg.Storage.Path)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
