package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/datastation/api-agreement/internal/pkg/application/services/agreements"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-agreement/api")

func NewGenerateAgreementHandler(logger zerolog.Logger, agreementSvc agreements.AgreementService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "generate-agreement")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		persistentID, _ := url.QueryUnescape(chi.URLParam(r, "id"))
		if persistentID == "" {
			err = fmt.Errorf("no dataset persistent identifier supplied in query")
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		sample := r.URL.Query().Get("sample") == "true"
		depositorID := r.URL.Query().Get("depositor")

		body, err := agreementSvc.Generate(ctx, persistentID, depositorID, sample)
		if err != nil {
			log.Error().Err(err).Msg("failed to generate agreement")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "text/plain; charset=utf-8")
		w.Header().Add("Content-Disposition", fmt.Sprintf("attachment; filename=\"agreement-%s.txt\"", uuid.New().String()))
		w.Write(body)
	})
}
