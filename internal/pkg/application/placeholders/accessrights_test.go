package placeholders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/datastation/api-agreement/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestIsOpenAccessClassification(t *testing.T) {
	is := is.New(t)

	classification := map[domain.AccessCategory]bool{
		domain.OpenAccess:                   true,
		domain.AnonymousAccess:              true,
		domain.FreelyAvailable:              true,
		"":                                  true,
		domain.OpenAccessForRegisteredUsers: false,
		domain.GroupAccess:                  false,
		domain.RequestPermission:            false,
		domain.AccessElsewhere:              false,
		domain.NoAccess:                     false,
	}

	for category, expected := range classification {
		open, err := IsOpenAccess(&metadataStub{access: category})
		is.NoErr(err)
		is.Equal(open, expected)
	}
}

func TestIsOpenAccessRejectsUnrecognizedCategories(t *testing.T) {
	is := is.New(t)

	_, err := IsOpenAccess(&metadataStub{access: "EMBARGOED_THEN_OPEN"})

	is.True(err != nil) // unknown categories must not be classified silently
}

func TestFormatDatasetAccessRightsLabels(t *testing.T) {
	is := is.New(t)
	labels, err := LoadLabels(t.TempDir())
	is.NoErr(err)

	mapper := New(labels, false)

	is.Equal(mapper.FormatDatasetAccessRights("OPEN_ACCESS"), "Open Access")
	is.Equal(mapper.FormatDatasetAccessRights("FREELY_AVAILABLE"), "Open Access")
	is.Equal(mapper.FormatDatasetAccessRights("GROUP_ACCESS"), "Restricted - 'archaeology' group")
	is.Equal(mapper.FormatDatasetAccessRights("NO_ACCESS"), "Other")
}

func TestFormatDatasetAccessRightsPassesUnmatchedValuesThrough(t *testing.T) {
	is := is.New(t)
	labels, err := LoadLabels(t.TempDir())
	is.NoErr(err)

	mapper := New(labels, false)

	is.Equal(mapper.FormatDatasetAccessRights("test"), "test")
}

func TestLoadLabelsAppliesOverridesFromResourceFile(t *testing.T) {
	is := is.New(t)
	resourceDir := t.TempDir()

	overrides := []byte(`
datasetAccessRights:
  GROUP_ACCESS: Restricted - 'oral history' group
`)
	err := os.WriteFile(filepath.Join(resourceDir, "accessrights.yaml"), overrides, 0600)
	is.NoErr(err)

	labels, err := LoadLabels(resourceDir)
	is.NoErr(err)

	mapper := New(labels, false)

	is.Equal(mapper.FormatDatasetAccessRights("GROUP_ACCESS"), "Restricted - 'oral history' group")
	is.Equal(mapper.FormatDatasetAccessRights("OPEN_ACCESS"), "Open Access") // defaults survive an override file
}

func TestFormatFileAccessRights(t *testing.T) {
	is := is.New(t)

	labels := map[domain.FileAccessRight]string{
		domain.FileAccessAnonymous:         "Anonymous",
		domain.FileAccessKnown:             "Known",
		domain.FileAccessRestrictedRequest: "Restricted request",
		domain.FileAccessRestrictedGroup:   "Restricted group",
		domain.FileAccessNone:              "None",
	}

	for right, expected := range labels {
		label, err := FormatFileAccessRights(right)
		is.NoErr(err)
		is.Equal(label, expected)
	}
}

func TestFormatFileAccessRightsRejectsUnknownValues(t *testing.T) {
	is := is.New(t)

	_, err := FormatFileAccessRights("EVERYONE")

	is.True(err != nil) // file access rights are a closed enumeration
}
