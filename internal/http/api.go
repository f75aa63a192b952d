package http

import (
	"context"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/MoeSaid22/subnet-registry/internal/auth"
	"github.com/MoeSaid22/subnet-registry/internal/domain"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger   *slog.Logger
	Health   HealthChecker
	Subnets  domain.SubnetRegistry
	Sites    domain.SiteRegistry
	Importer *domain.Importer

	authenticator auth.Authenticator
}

func NewAPI(
	logger *slog.Logger,
	health HealthChecker,
	subnets domain.SubnetRegistry,
	sites domain.SiteRegistry,
	importer *domain.Importer,
	authenticator auth.Authenticator,
) *API {
	return &API{
		Logger:        logger,
		Health:        health,
		Subnets:       subnets,
		Sites:         sites,
		Importer:      importer,
		authenticator: authenticator,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/readyz", a.handleReadyz)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	mux.HandleFunc("GET /api/v1/subnets", a.handleGetAllSubnets)
	mux.HandleFunc("POST /api/v1/subnets", a.handleCreateSubnet)
	mux.HandleFunc("PUT /api/v1/subnets/{id}", a.handleUpdateSubnet)
	mux.HandleFunc("DELETE /api/v1/subnets/{id}", a.handleDeleteSubnetByID)
	mux.HandleFunc("DELETE /api/v1/subnets", a.handleDeleteSubnets)
	mux.HandleFunc("GET /api/v1/subnets/lookup", a.handleLookupIP)
	mux.HandleFunc("GET /api/v1/subnets/overlaps", a.handleGetOverlaps)
	mux.HandleFunc("POST /api/v1/subnets/import", a.handleImportSubnets)
	mux.HandleFunc("GET /api/v1/subnets/export", a.handleExportSubnets)
	mux.HandleFunc("GET /api/v1/sites", a.handleGetAllSites)
	mux.HandleFunc("POST /api/v1/sites", a.handleCreateSite)
	mux.HandleFunc("DELETE /api/v1/sites/{id}", a.handleDeleteSiteByID)
	mux.HandleFunc("DELETE /api/v1/sites", a.handleDeleteSites)

	return a.requestIDMiddleware(a.authMiddleware(mux))
}
