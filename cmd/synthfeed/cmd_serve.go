package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/rpgo/synthfeed/internal/server"
	"github.com/rpgo/synthfeed/pkg/logger"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
				cfg.Server.Listen = listen
			}

			log, err := logger.Init(logger.FromSettings(cfg.Logging))
			if err != nil {
				return err
			}

			srv, err := server.New(server.Config{Configuration: cfg, Logger: log})
			if err != nil {
				return err
			}
			defer srv.Close()

			httpSrv := &http.Server{
				Addr:              cfg.Server.Listen,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				log.Infof("synthfeed listening on %s", cfg.Server.Listen)
				if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			stopCh := make(chan os.Signal, 1)
			notifySignals(stopCh)

			select {
			case sig := <-stopCh:
				log.Infof("received %s, shutting down", sig)
			case err := <-errCh:
				if err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpSrv.Shutdown(ctx); err != nil {
				return err
			}
			log.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().String("listen", "", "HTTP listen address (overrides server.listen)")
	return cmd
}
