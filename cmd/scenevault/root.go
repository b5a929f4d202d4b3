package main

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/castkit/scenevault"
	"github.com/castkit/scenevault/internal/config"
	"github.com/castkit/scenevault/internal/logging"
	redisstore "github.com/castkit/scenevault/pkg/adapters/redis"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scenevault",
	Short: "Scenevault manages versioned scene collections",
	Long:  `Scenevault stores the scene collections of a broadcast compositor as versioned JSON documents and manages their lifecycle: create, duplicate, rename, remove and serve.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "", "Directory containing the collection documents (overrides config)")
	rootCmd.PersistentFlags().String("config", "scenevault.yaml", "Path to the config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		cfg.DataDir = dir
	}
	return cfg, nil
}

// openVault builds a Vault from the resolved config. Storage goes to Redis
// when redis_addr is set, to the data directory otherwise.
func openVault(cmd *cobra.Command) (*scenevault.Vault, *config.Config, error) {
	return openVaultWithMetrics(cmd, nil)
}

func openVaultWithMetrics(cmd *cobra.Command, reg prometheus.Registerer) (*scenevault.Vault, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	opts := []scenevault.Option{
		scenevault.WithDebounceWindow(cfg.DebounceWindow()),
	}
	if reg != nil {
		opts = append(opts, scenevault.WithMetrics(reg))
	}
	if cfg.DefaultCollection != "" {
		opts = append(opts, scenevault.WithDefaultCollection(cfg.DefaultCollection))
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts = append(opts, scenevault.WithLogger(logging.New(slog.LevelDebug)))
	}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		opts = append(opts, scenevault.WithStore(redisstore.New(client)))
	}

	vault, err := scenevault.Open(cmd.Context(), cfg.DataDir, opts...)
	if err != nil {
		return nil, nil, err
	}
	return vault, cfg, nil
}
