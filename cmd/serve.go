package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"category_admin/internal/delivery"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the admin HTTP back end",
		Long:  `Serve the session category store and account endpoints over HTTP for the browser UI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.Info("Starting category admin...")
			a.log.Infof("Remote API target: %s", a.cfg.APIBaseURL)

			loadCtx, cancel := context.WithTimeout(ctx, a.cfg.APITimeout)
			if _, err := a.categories.LoadCategories(loadCtx); err != nil {
				a.log.Warnf("Starting with an empty category list: %v", err)
			}
			cancel()

			if a.log.IsLevelEnabled(logrus.DebugLevel) {
				gin.SetMode(gin.DebugMode)
			} else {
				gin.SetMode(gin.ReleaseMode)
			}

			router := delivery.NewRouter(
				delivery.NewCategoryHandler(a.categories, a.log),
				delivery.NewAccountHandler(a.accounts, a.log),
				a.log,
			)
			srv := &http.Server{
				Addr:              a.cfg.AdminPort,
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.log.Infof("Category admin listening on %s", a.cfg.AdminPort)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			a.log.Info("Shutting down category admin...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
