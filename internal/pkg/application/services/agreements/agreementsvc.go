package agreements

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/datastation/api-agreement/internal/pkg/application/placeholders"
	"github.com/datastation/api-agreement/internal/pkg/application/services/accounts"
	"github.com/datastation/api-agreement/internal/pkg/application/services/datasets"
	"github.com/datastation/api-agreement/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-agreement/svcs/agreements")

//go:generate moq -rm -out agreementsvc_mock.go . AgreementService

// AgreementService generates the deposit agreement document for a dataset.
// With sample set, an abbreviated agreement is produced that leaves out the
// dataset's persistent identifier, for use before a DOI has been assigned.
type AgreementService interface {
	Generate(ctx context.Context, persistentID, depositorID string, sample bool) ([]byte, error)
}

func NewAgreementService(datasetSvc datasets.DatasetService, accountSvc accounts.AccountService, labels placeholders.Labels, resourceDir string) AgreementService {
	return &agreementSvc{
		datasets:    datasetSvc,
		accounts:    accountSvc,
		labels:      labels,
		resourceDir: resourceDir,
	}
}

type agreementSvc struct {
	datasets    datasets.DatasetService
	accounts    accounts.AccountService
	labels      placeholders.Labels
	resourceDir string
}

func (svc *agreementSvc) Generate(ctx context.Context, persistentID, depositorID string, sample bool) ([]byte, error) {
	var err error
	ctx, span := tracer.Start(ctx, "generate-agreement")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	md, err := svc.datasets.GetByID(ctx, persistentID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve dataset %s: %w", persistentID, err)
	}

	if depositorID == "" {
		if depositors := md.TermValues("depositor"); len(depositors) > 0 {
			depositorID = depositors[0]
		}
	}

	dep, err := svc.accounts.GetDepositor(ctx, depositorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve depositor of %s: %w", persistentID, err)
	}

	substitutions, err := svc.substitutions(md, dep, sample)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err = agreementTmpl.Execute(&buf, substitutions); err != nil {
		return nil, fmt.Errorf("failed to render agreement for %s: %w", persistentID, err)
	}

	return buf.Bytes(), nil
}

// substitutions merges the partial placeholder maps into the full
// substitution context handed to the document template.
func (svc *agreementSvc) substitutions(md domain.DatasetMetadata, dep domain.Depositor, sample bool) (domain.PlaceholderMap, error) {
	mapper := placeholders.New(svc.labels, sample)

	var header domain.PlaceholderMap
	if sample {
		header = mapper.SampleHeader(md)
	} else {
		header = mapper.Header(md)
	}

	open, err := placeholders.IsOpenAccess(md)
	if err != nil {
		return nil, err
	}

	category := md.AccessCategory()
	if category == "" {
		category = domain.OpenAccess
	}

	footer, err := placeholders.FooterText(filepath.Join(svc.resourceDir, "footer.txt"))
	if err != nil {
		return nil, err
	}

	return header.Merge(
		mapper.Embargo(md),
		mapper.Depositor(dep),
		domain.PlaceholderMap{
			"OpenAccess":   open,
			"AccessRights": mapper.FormatDatasetAccessRights(string(category)),
			"FooterText":   footer,
		},
	), nil
}
