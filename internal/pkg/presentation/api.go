package presentation

import (
	"compress/flate"
	"context"
	"net/http"

	"github.com/datastation/api-agreement/internal/pkg/application/services/agreements"
	"github.com/datastation/api-agreement/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

type agreementAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(ctx context.Context, r chi.Router, agreementSvc agreements.AgreementService) API {
	return newAgreementAPI(ctx, r, agreementSvc)
}

func newAgreementAPI(ctx context.Context, r chi.Router, agreementSvc agreements.AgreementService) *agreementAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(
		flate.DefaultCompression,
		"text/plain", "application/json",
	)
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("api-agreement", otelchi.WithChiRoutes(r)))

	a := &agreementAPI{
		router: r,
		log:    log,
	}

	a.addAgreementHandlers(r, log, agreementSvc)
	a.addProbeHandlers(r)

	return a
}

func (a *agreementAPI) Start(port string) error {
	a.log.Info().Msgf("Starting api-agreement on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *agreementAPI) addAgreementHandlers(r chi.Router, log zerolog.Logger, agreementSvc agreements.AgreementService) {
	r.Get(
		"/api/agreements/{id}",
		handlers.NewGenerateAgreementHandler(log, agreementSvc),
	)
}

func (a *agreementAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
