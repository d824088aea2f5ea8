/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssargent/recfactory/pkg/api"
	"github.com/ssargent/recfactory/pkg/config"
	"github.com/ssargent/recfactory/pkg/di"
	"github.com/ssargent/recfactory/pkg/logging"
)

var container *di.Container

// SetContainer injects the dependency container used by all commands
func SetContainer(c *di.Container) {
	container = c
}

type sessionKey struct{}

// session is what every command except init runs with
type session struct {
	config  *config.Config
	logger  *zap.Logger
	factory api.RecordFactory
}

func sessionFrom(cmd *cobra.Command) (*session, error) {
	s, ok := cmd.Context().Value(sessionKey{}).(*session)
	if !ok {
		return nil, errors.New("session not initialized")
	}
	return s, nil
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "recfactory",
		Short: "recfactory - fixed-capacity record builder",
		Long: `recfactory builds Person records with a bounded 100-byte name buffer.

Names longer than 99 bytes are truncated silently. The only failure is
allocation failure, which can be provoked by setting an allocator budget.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadSession,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s, err := sessionFrom(cmd); err == nil {
				_ = s.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default "+config.GetDefaultConfigPath()+" if present)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int64("budget", 0, "Allocator budget in bytes for live records (0 = unlimited); overrides config")

	rootCmd.AddCommand(
		newCreateCmd(),
		newBatchCmd(),
		newLayoutCmd(),
		newInitCmd(),
		newServeCmd(),
	)

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSession(cmd *cobra.Command, args []string) error {
	if container == nil {
		return errors.New("dependency container not initialized")
	}

	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("budget") {
		budget, _ := cmd.Flags().GetInt64("budget")
		cfg.Allocator.BudgetBytes = budget
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, verbose)
	if err != nil {
		return err
	}

	factory := container.GetRecordFactoryProvider().CreateRecordFactory(cfg.Allocator.BudgetBytes)
	logger.Debug("session ready",
		zap.String("command", cmd.Name()),
		zap.Int64("budget_bytes", cfg.Allocator.BudgetBytes),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, sessionKey{}, &session{
		config:  cfg,
		logger:  logger,
		factory: factory,
	}))
	return nil
}

// resolveConfig loads an explicit config path, else the default path if it
// exists, else the built-in defaults
func resolveConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	defaultPath := config.GetDefaultConfigPath()
	if config.ConfigExists(defaultPath) {
		cfg, err := config.LoadConfig(defaultPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	return config.DefaultConfig(), nil
}
