package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/MoeSaid22/subnet-registry/internal/auth"
	"github.com/MoeSaid22/subnet-registry/internal/config"
	"github.com/MoeSaid22/subnet-registry/internal/domain"
	apihttp "github.com/MoeSaid22/subnet-registry/internal/http"
	"github.com/MoeSaid22/subnet-registry/internal/store"
)

func newAuthenticator(ctx context.Context, cfg config.Settings) (auth.Authenticator, error) {
	return auth.NewJWKSAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.AuthIssuer,
		Audience: cfg.AuthAudience,
		JWKSURL:  cfg.AuthJWKSURL,
	})
}

// Run listens on the configured port and serves until ctx is done.
func Run(ctx context.Context, cfg config.Settings) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, cfg, listener)
}

// Serve wires the registries, importer and API onto listener and blocks
// until ctx is done, then shuts the server down. Startup problems (an
// unwritable data dir, an unreachable JWKS endpoint) are returned before
// the server starts accepting requests.
func Serve(ctx context.Context, cfg config.Settings, listener net.Listener) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	subnetStore := store.NewJSONFile[domain.SubnetRecord](cfg.SubnetStorePath())
	siteStore := store.NewJSONFile[domain.SiteRecord](cfg.SiteStorePath())
	if err := subnetStore.Ping(ctx); err != nil {
		return fmt.Errorf("data dir %s not writable: %w", cfg.DataDir, err)
	}

	var opts []domain.RegistryOption
	if cfg.RejectOverlaps {
		opts = append(opts, domain.WithOverlapRejection())
	}
	subnets := domain.NewLoggingSubnetRegistry(logger, domain.NewSubnetRegistry(subnetStore, logger, opts...))
	sites := domain.NewLoggingSiteRegistry(logger, domain.NewSiteRegistry(siteStore, logger))

	subnets.LoadAll()
	sites.LoadAll()

	importer := domain.NewImporter(subnets, logger)

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return err
	}

	api := apihttp.NewAPI(logger, subnetStore, subnets, sites, importer, authenticator)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("serving http api", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("serve failed", "err", err.Error())
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
