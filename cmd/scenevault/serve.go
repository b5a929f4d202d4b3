package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/castkit/scenevault/internal/logging"
	"github.com/castkit/scenevault/pkg/adapters/httpapi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the collection management HTTP server",
	Long:  `Starts the scenevault HTTP server, exposing collection management and Prometheus metrics over a JSON API.`,
	Run: func(cmd *cobra.Command, args []string) {
		reg := prometheus.NewRegistry()

		vault, cfg, err := openVaultWithMetrics(cmd, reg)
		if err != nil {
			fmt.Printf("Error opening vault: %v\n", err)
			os.Exit(1)
		}

		listen, _ := cmd.Flags().GetString("listen")
		if listen == "" {
			listen = cfg.Listen
		}

		logger := logging.New(slog.LevelInfo)
		handler := httpapi.NewHandler(vault.Manager(),
			httpapi.WithLogger(logger),
			httpapi.WithMetrics(reg),
		)

		srv := &http.Server{
			Addr:    listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting scenevault server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}

			// A pending debounced save must not be lost on the way out.
			if err := vault.Close(ctx); err != nil {
				fmt.Printf("Error flushing vault: %v\n", err)
			}
			fmt.Println("Scenevault server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", "", "Address to listen on (defaults to the config value)")
}
