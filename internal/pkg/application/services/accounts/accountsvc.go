package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/datastation/api-agreement/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-agreement/svcs/accounts")

//go:generate moq -rm -out accountsvc_mock.go . AccountService

// AccountService resolves a depositor account identifier to the depositor's
// contact record.
type AccountService interface {
	GetDepositor(ctx context.Context, accountID string) (domain.Depositor, error)
}

func NewAccountService(serverURL, apiToken string) AccountService {
	return &accountSvc{
		serverURL: serverURL,
		apiToken:  apiToken,
	}
}

type accountSvc struct {
	serverURL string
	apiToken  string
}

type userResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Data    userData `json:"data"`
}

// userData mirrors the authenticated user payload of the repository. The
// contact fields beyond displayName, affiliation and email are only present
// on installations that enrich the payload from their account registry.
type userData struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"displayName"`
	Affiliation string `json:"affiliation"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Telephone   string `json:"telephone"`
}

func (svc *accountSvc) GetDepositor(ctx context.Context, accountID string) (domain.Depositor, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-depositor")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if accountID == "" {
		err = fmt.Errorf("no depositor account identifier supplied")
		return domain.Depositor{}, err
	}

	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	requestURL := fmt.Sprintf("%s/api/v1/admin/authenticatedUsers/%s", svc.serverURL, url.PathEscape(accountID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return domain.Depositor{}, err
	}
	req.Header.Set("X-Dataverse-key", svc.apiToken)

	resp, err := httpClient.Do(req)
	if err != nil {
		return domain.Depositor{}, fmt.Errorf("failed to request account %s: %w", accountID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		err = fmt.Errorf("account %s not found", accountID)
		return domain.Depositor{}, err
	}
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("account lookup for %s failed with status %d", accountID, resp.StatusCode)
		return domain.Depositor{}, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Depositor{}, err
	}

	res := userResponse{}
	if err = json.Unmarshal(body, &res); err != nil {
		return domain.Depositor{}, fmt.Errorf("failed to decode account %s: %w", accountID, err)
	}

	if res.Status != "OK" {
		err = fmt.Errorf("account lookup for %s failed: status=%s (%s)", accountID, res.Status, res.Message)
		return domain.Depositor{}, err
	}

	return domain.Depositor{
		Name:         res.Data.DisplayName,
		Organisation: res.Data.Affiliation,
		Address:      res.Data.Address,
		PostalCode:   res.Data.PostalCode,
		City:         res.Data.City,
		Country:      res.Data.Country,
		Telephone:    res.Data.Telephone,
		Email:        res.Data.Email,
	}, nil
}
