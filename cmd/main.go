package main

import (
	"fmt"
	"os"

	"category_admin/config"
	"category_admin/internal/auth"
	"category_admin/internal/clients"
	"category_admin/internal/store"
	"category_admin/internal/usecase"
	"category_admin/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app is the wired object graph shared by every command.
type app struct {
	cfg        *config.Config
	log        *logrus.Logger
	session    *auth.Session
	categories usecase.CategoryUseCase
	accounts   usecase.AccountUseCase
}

func newApp() (*app, error) {
	cfg, err := config.Load(config.NewLogger(os.Getenv("LOG_LEVEL")))
	if err != nil {
		return nil, err
	}
	logger := config.NewLogger(cfg.LogLevel)

	session := auth.NewSession()
	token := cfg.AuthToken
	if token == "" {
		if token, err = auth.ReadTokenFile(cfg.TokenFile); err != nil {
			logger.Warnf("Ignoring token file: %v", err)
		}
	}
	if token != "" {
		if err := session.Adopt(token); err != nil {
			logger.Warnf("Using token without a readable identity: %v", err)
		} else {
			logger.Infof("Acting as %s", session.Identity().Email)
		}
	}

	validator := validation.New()
	categoryAPI := clients.NewCategoryHTTPClient(cfg.APIBaseURL, session, cfg.APITimeout, logger)
	accountAPI := clients.NewAccountHTTPClient(cfg.APIBaseURL, cfg.APITimeout, logger)
	categoryStore := store.NewCategoryStore(logger)

	return &app{
		cfg:        cfg,
		log:        logger,
		session:    session,
		categories: usecase.NewCategoryUseCase(categoryAPI, categoryStore, validator, logger),
		accounts:   usecase.NewAccountUseCase(accountAPI, session, validator, logger),
	}, nil
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "category-admin",
		Short:         "Administer categories on a remote catalog API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(categoriesCmd())
	cmd.AddCommand(loginCmd())
	cmd.AddCommand(registerCmd())
	cmd.AddCommand(whoamiCmd())

	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
