package datasets

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/datastation/api-agreement/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/libis/rdm-dataverse-go-api/api"
	"go.opentelemetry.io/otel"
	"golang.org/x/exp/slices"
)

var tracer = otel.Tracer("api-agreement/svcs/datasets")

//go:generate moq -rm -out datasetsvc_mock.go . DatasetService

// DatasetService retrieves the descriptive metadata record of a deposited
// dataset from the repository.
type DatasetService interface {
	GetByID(ctx context.Context, persistentID string) (domain.DatasetMetadata, error)
}

func NewDatasetService(serverURL, apiToken string) DatasetService {
	return &datasetSvc{
		serverURL: serverURL,
		apiToken:  apiToken,
	}
}

type datasetSvc struct {
	serverURL string
	apiToken  string
}

// dateLayouts covers the formats Dataverse uses for date typed metadata
// fields.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type datasetVersionResponse struct {
	Status  string             `json:"status"`
	Message string             `json:"message,omitempty"`
	Data    datasetVersionData `json:"data"`
}

type datasetVersionData struct {
	DatasetPersistentID string                   `json:"datasetPersistentId"`
	MetadataBlocks      map[string]metadataBlock `json:"metadataBlocks"`
}

type metadataBlock struct {
	Fields []metadataField `json:"fields"`
}

type metadataField struct {
	TypeName string `json:"typeName"`
	Value    any    `json:"value"`
}

func (svc *datasetSvc) GetByID(ctx context.Context, persistentID string) (domain.DatasetMetadata, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-dataset-version")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	res := datasetVersionResponse{}

	fetch := func() error {
		client := api.NewClient(svc.serverURL)
		client.Token = svc.apiToken

		path := "/api/v1/datasets/:persistentId/versions/:latest?persistentId=" +
			url.QueryEscape(persistentID) + "&excludeFiles=true"
		req := client.NewRequest(path, "GET", nil, nil)

		return api.Do(ctx, req, &res)
	}

	err = backoff.Retry(fetch, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve dataset version for %s: %w", persistentID, err)
	}

	if res.Status != "OK" {
		message := res.Message
		if message == "" {
			message = "no additional details"
		}
		err = fmt.Errorf("retrieving dataset version for %s failed: status=%s (%s)", persistentID, res.Status, message)
		return nil, err
	}

	return newDatasetMetadata(res.Data), nil
}

// datasetMetadata implements domain.DatasetMetadata on top of a decoded
// dataset version response.
type datasetMetadata struct {
	persistentID string
	terms        map[string][]string
}

func newDatasetMetadata(data datasetVersionData) *datasetMetadata {
	terms := map[string][]string{}
	for _, block := range data.MetadataBlocks {
		for _, field := range block.Fields {
			if values := flattenValue(field.Value); len(values) > 0 {
				terms[field.TypeName] = append(terms[field.TypeName], values...)
			}
		}
	}

	return &datasetMetadata{
		persistentID: strings.TrimPrefix(data.DatasetPersistentID, "doi:"),
		terms:        terms,
	}
}

func (d *datasetMetadata) PersistentID() string {
	return d.persistentID
}

func (d *datasetMetadata) PreferredTitle() string {
	if titles := d.terms["title"]; len(titles) > 0 {
		return titles[0]
	}
	return ""
}

func (d *datasetMetadata) DatesSubmitted() []time.Time {
	return parseDates(d.terms["dateOfDeposit"])
}

func (d *datasetMetadata) DatesAvailable() []time.Time {
	return parseDates(d.terms["distributionDate"])
}

func (d *datasetMetadata) AccessCategory() domain.AccessCategory {
	if categories := d.terms["accessRights"]; len(categories) > 0 {
		return domain.AccessCategory(categories[0])
	}
	return ""
}

func (d *datasetMetadata) TermValues(term string) []string {
	return d.terms[term]
}

// flattenValue collects the string values of a metadata field, descending
// into multiple and compound values the way the native API nests them.
func flattenValue(value any) []string {
	switch v := value.(type) {
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return []string{trimmed}
		}
	case []any:
		result := []string{}
		for _, item := range v {
			result = append(result, flattenValue(item)...)
		}
		return result
	case map[string]any:
		if nested, ok := v["value"]; ok {
			return flattenValue(nested)
		}
	}
	return nil
}

func parseDates(values []string) []time.Time {
	result := []time.Time{}
	for _, value := range values {
		for _, layout := range dateLayouts {
			if d, err := time.Parse(layout, value); err == nil {
				result = append(result, d)
				break
			}
		}
	}
	slices.SortFunc(result, func(a, b time.Time) bool { return a.Before(b) })
	return result
}
