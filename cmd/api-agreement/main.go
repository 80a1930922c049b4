package main

import (
	"context"
	"flag"

	"github.com/datastation/api-agreement/internal/pkg/application/placeholders"
	"github.com/datastation/api-agreement/internal/pkg/application/services/accounts"
	"github.com/datastation/api-agreement/internal/pkg/application/services/agreements"
	"github.com/datastation/api-agreement/internal/pkg/application/services/datasets"
	"github.com/datastation/api-agreement/internal/pkg/presentation"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/go-chi/chi/v5"
)

var resourceDir string

func main() {
	serviceName := "api-agreement"
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&resourceDir, "resources", "/opt/datastation/agreement", "Directory holding the agreement template resources")
	flag.Parse()

	repositoryURL := env.GetVariableOrDie(log, "REPOSITORY_URL", "repository server URL")
	repositoryToken := env.GetVariableOrDefault(log, "REPOSITORY_API_TOKEN", "")

	labels, err := placeholders.LoadLabels(resourceDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load access rights labels")
	}

	datasetSvc := datasets.NewDatasetService(repositoryURL, repositoryToken)
	accountSvc := accounts.NewAccountService(repositoryURL, repositoryToken)
	agreementSvc := agreements.NewAgreementService(datasetSvc, accountSvc, labels, resourceDir)

	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")

	r := chi.NewRouter()
	api := presentation.NewAPI(ctx, r, agreementSvc)

	err = api.Start(port)
	if err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}
