package placeholders

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/datastation/api-agreement/internal/pkg/domain"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

// Labels maps dataset access categories to their human readable display
// labels.
type Labels map[string]string

var defaultLabels = Labels{
	"ANONYMOUS_ACCESS":                 "Anonymous",
	"OPEN_ACCESS":                      "Open Access",
	"FREELY_AVAILABLE":                 "Open Access",
	"OPEN_ACCESS_FOR_REGISTERED_USERS": "Open access for registered users",
	"GROUP_ACCESS":                     "Restricted - 'archaeology' group",
	"REQUEST_PERMISSION":               "Restricted - request permission",
	"ACCESS_ELSEWHERE":                 "Elsewhere",
	"NO_ACCESS":                        "Other",
}

var openCategories = []domain.AccessCategory{
	domain.OpenAccess,
	domain.AnonymousAccess,
	domain.FreelyAvailable,
}

var restrictedCategories = []domain.AccessCategory{
	domain.OpenAccessForRegisteredUsers,
	domain.GroupAccess,
	domain.RequestPermission,
	domain.AccessElsewhere,
	domain.NoAccess,
}

// LoadLabels reads access rights display labels from accessrights.yaml in
// the given resource directory. Entries in the file override the built in
// labels; a missing file leaves all of them in place.
func LoadLabels(resourceDir string) (Labels, error) {
	labels := Labels{}
	for category, label := range defaultLabels {
		labels[category] = label
	}

	b, err := os.ReadFile(filepath.Join(resourceDir, "accessrights.yaml"))
	if os.IsNotExist(err) {
		return labels, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read access rights labels: %w", err)
	}

	overrides := struct {
		DatasetAccessRights map[string]string `yaml:"datasetAccessRights"`
	}{}

	if err := yaml.Unmarshal(b, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse access rights labels: %w", err)
	}

	for category, label := range overrides.DatasetAccessRights {
		labels[category] = label
	}

	return labels, nil
}

// IsOpenAccess classifies the dataset's access category as open or
// restricted. Datasets without a category default to open. A non empty
// category outside the known enumeration is a data error and is reported as
// such rather than silently classified.
func IsOpenAccess(md domain.DatasetMetadata) (bool, error) {
	category := md.AccessCategory()
	if category == "" {
		return true, nil
	}
	if slices.Contains(openCategories, category) {
		return true, nil
	}
	if slices.Contains(restrictedCategories, category) {
		return false, nil
	}
	return false, fmt.Errorf("unrecognized access category %q", category)
}

// FormatDatasetAccessRights converts the string form of a dataset access
// category into its display label. Values without a label pass through
// unchanged, so that categories introduced by a newer repository version
// still render.
func (m Mapper) FormatDatasetAccessRights(item string) string {
	if label, ok := m.labels[item]; ok {
		return label
	}
	return item
}

// FormatFileAccessRights converts a file access right into its display
// label. Unlike the dataset category labels there is no pass through here:
// the input is a closed enumeration and anything else is an error.
func FormatFileAccessRights(right domain.FileAccessRight) (string, error) {
	switch right {
	case domain.FileAccessAnonymous:
		return "Anonymous", nil
	case domain.FileAccessKnown:
		return "Known", nil
	case domain.FileAccessRestrictedRequest:
		return "Restricted request", nil
	case domain.FileAccessRestrictedGroup:
		return "Restricted group", nil
	case domain.FileAccessNone:
		return "None", nil
	}
	return "", fmt.Errorf("unrecognized file access right %q", right)
}
