package placeholders

import (
	"strings"
	"time"

	"github.com/datastation/api-agreement/internal/pkg/domain"
)

const (
	isoDateLayout = "2006-01-02"
	// embargoDateLayout renders the availability date in the embargoed
	// branch of the agreement. The layout must stay in sync with the
	// document templates.
	embargoDateLayout = "2006-01-02"
)

// Mapper derives agreement template placeholders from a dataset's metadata
// record and its depositor's contact record. A Mapper is created per mapping
// request and holds no mutable state; all methods are safe for concurrent
// use.
type Mapper struct {
	labels Labels
	sample bool
}

func New(labels Labels, sample bool) Mapper {
	return Mapper{labels: labels, sample: sample}
}

// Header produces the placeholders for the top section of an agreement:
// IsSample, DansManagedDoi, DansManagedEncodedDoi, DateSubmitted and Title.
// A dataset without a persistent identifier yields empty strings for both
// DOI placeholders.
func (m Mapper) Header(md domain.DatasetMetadata) domain.PlaceholderMap {
	doi := md.PersistentID()

	return domain.PlaceholderMap{
		"IsSample":              m.sample,
		"DansManagedDoi":        doi,
		"DansManagedEncodedDoi": encodeDoi(doi),
		"DateSubmitted":         dateSubmitted(md),
		"Title":                 md.PreferredTitle(),
	}
}

// SampleHeader is the restricted Header variant for sample agreements. A
// sample is generated before a persistent identifier has been assigned, so
// this function must never read the identifier from the metadata record.
func (m Mapper) SampleHeader(md domain.DatasetMetadata) domain.PlaceholderMap {
	return domain.PlaceholderMap{
		"IsSample":      true,
		"DateSubmitted": dateSubmitted(md),
		"Title":         md.PreferredTitle(),
	}
}

// Embargo produces the DateAvailable and UnderEmbargo placeholders. A
// dataset is under embargo when its earliest availability date lies strictly
// after the current calendar day. Without any availability date the dataset
// counts as available, with an empty DateAvailable.
func (m Mapper) Embargo(md domain.DatasetMetadata) domain.PlaceholderMap {
	available, ok := FirstDate(md, domain.DatasetMetadata.DatesAvailable)
	if !ok {
		return domain.PlaceholderMap{
			"DateAvailable": "",
			"UnderEmbargo":  false,
		}
	}

	today := truncateToDay(time.Now())
	if truncateToDay(available).After(today) {
		return domain.PlaceholderMap{
			"DateAvailable": available.Format(embargoDateLayout),
			"UnderEmbargo":  true,
		}
	}

	return domain.PlaceholderMap{
		"DateAvailable": available.Format(isoDateLayout),
		"UnderEmbargo":  false,
	}
}

// Depositor copies the depositor's contact record into the eight depositor
// placeholders, without any transformation or defaulting.
func (m Mapper) Depositor(dep domain.Depositor) domain.PlaceholderMap {
	return domain.PlaceholderMap{
		"DepositorName":         dep.Name,
		"DepositorOrganisation": dep.Organisation,
		"DepositorAddress":      dep.Address,
		"DepositorPostalCode":   dep.PostalCode,
		"DepositorCity":         dep.City,
		"DepositorCountry":      dep.Country,
		"DepositorTelephone":    dep.Telephone,
		"DepositorEmail":        dep.Email,
	}
}

// FirstDate returns the first date of the sequence that selector extracts
// from the metadata record. The second return value is false when the
// sequence is empty; callers apply their own default in that case.
func FirstDate(md domain.DatasetMetadata, selector func(domain.DatasetMetadata) []time.Time) (time.Time, bool) {
	dates := selector(md)
	if len(dates) == 0 {
		return time.Time{}, false
	}
	return dates[0], true
}

func dateSubmitted(md domain.DatasetMetadata) string {
	// the zero time renders as 0001-01-01 when no submission date exists
	submitted, _ := FirstDate(md, domain.DatasetMetadata.DatesSubmitted)
	return submitted.Format(isoDateLayout)
}

// encodeDoi escapes the slash separating prefix and suffix, and only that
// character, so that the identifier can be embedded in resolver URLs.
func encodeDoi(doi string) string {
	return strings.ReplaceAll(doi, "/", "%2F")
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
