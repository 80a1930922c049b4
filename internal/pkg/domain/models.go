package domain

import "time"

// AccessCategory is the dataset level classification governing who may
// access the dataset's content. An empty value means the category was not
// specified in the metadata record.
type AccessCategory string

const (
	OpenAccess                   AccessCategory = "OPEN_ACCESS"
	AnonymousAccess              AccessCategory = "ANONYMOUS_ACCESS"
	FreelyAvailable              AccessCategory = "FREELY_AVAILABLE"
	OpenAccessForRegisteredUsers AccessCategory = "OPEN_ACCESS_FOR_REGISTERED_USERS"
	GroupAccess                  AccessCategory = "GROUP_ACCESS"
	RequestPermission            AccessCategory = "REQUEST_PERMISSION"
	AccessElsewhere              AccessCategory = "ACCESS_ELSEWHERE"
	NoAccess                     AccessCategory = "NO_ACCESS"
)

// FileAccessRight is the per file classification, distinct from the dataset
// level access category.
type FileAccessRight string

const (
	FileAccessAnonymous         FileAccessRight = "ANONYMOUS"
	FileAccessKnown             FileAccessRight = "KNOWN"
	FileAccessRestrictedRequest FileAccessRight = "RESTRICTED_REQUEST"
	FileAccessRestrictedGroup   FileAccessRight = "RESTRICTED_GROUP"
	FileAccessNone              FileAccessRight = "NONE"
)

// DatasetMetadata is the descriptive metadata record of a deposited dataset,
// as supplied by the repository. Implementations are read only.
type DatasetMetadata interface {
	// PersistentID returns the managed persistent identifier of the
	// dataset, or an empty string when none has been assigned yet.
	PersistentID() string
	PreferredTitle() string
	// DatesSubmitted returns the submission dates in ascending order.
	// The sequence may be empty.
	DatesSubmitted() []time.Time
	// DatesAvailable returns the availability dates in ascending order.
	// The sequence may be empty.
	DatesAvailable() []time.Time
	AccessCategory() AccessCategory
	// TermValues returns the string form of all values recorded for an
	// arbitrary metadata term.
	TermValues(term string) []string
}

// Depositor holds the contact record of the account that deposited a
// dataset. Fields that the identity service cannot supply are left empty.
type Depositor struct {
	Name         string `json:"name"`
	Organisation string `json:"organisation"`
	Address      string `json:"address"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Telephone    string `json:"telephone"`
	Email        string `json:"email"`
}

// PlaceholderMap maps placeholder names to the string or boolean values that
// are substituted into an agreement document template.
type PlaceholderMap map[string]any

// Merge copies the entries of the given maps into m and returns m. The
// extraction functions producing the partial maps use disjoint key sets, so
// no entry is ever overwritten.
func (m PlaceholderMap) Merge(others ...PlaceholderMap) PlaceholderMap {
	for _, other := range others {
		for k, v := range other {
			m[k] = v
		}
	}
	return m
}
