package datasets

import (
	"context"
	"testing"
	"time"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput

func TestGetByIDDecodesTheDatasetVersion(t *testing.T) {
	is, ms := testSetup(t, 200, datasetVersionJson)

	svc := NewDatasetService(ms.URL(), "secret-api-token")
	md, err := svc.GetByID(context.Background(), "doi:12.3456/dans-ab7-cdef")
	is.NoErr(err)

	is.Equal(md.PersistentID(), "12.3456/dans-ab7-cdef") // doi prefix must be stripped
	is.Equal(md.PreferredTitle(), "my preferred title")
	is.Equal(md.DatesSubmitted(), []time.Time{date("1992-07-30")})
	is.Equal(md.DatesAvailable(), []time.Time{date("2016-07-30")})
	is.Equal(string(md.AccessCategory()), "REQUEST_PERMISSION")
	is.Equal(md.TermValues("depositor"), []string{"dataverseAdmin"})
}

func TestGetByIDToleratesMissingOptionalTerms(t *testing.T) {
	is, ms := testSetup(t, 200, sparseDatasetVersionJson)

	svc := NewDatasetService(ms.URL(), "")
	md, err := svc.GetByID(context.Background(), "doi:10.5072/FK2/XXXXXX")
	is.NoErr(err)

	is.Equal(len(md.DatesSubmitted()), 0)
	is.Equal(len(md.DatesAvailable()), 0)
	is.Equal(string(md.AccessCategory()), "") // absence is not an error
}

func TestGetByIDFailsOnErrorStatus(t *testing.T) {
	is, ms := testSetup(t, 200, `{"status":"ERROR","message":"dataset not found"}`)

	svc := NewDatasetService(ms.URL(), "")
	_, err := svc.GetByID(context.Background(), "doi:10.5072/FK2/MISSING")

	is.True(err != nil)
}

func testSetup(t *testing.T, statusCode int, responseBody string) (*is.I, testutils.MockService) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(statusCode),
			response.ContentType("application/json"),
			response.Body([]byte(responseBody)),
		),
	)

	return is, ms
}

func date(value string) time.Time {
	d, _ := time.Parse("2006-01-02", value)
	return d
}

const datasetVersionJson string = `{
	"status": "OK",
	"data": {
		"id": 24,
		"datasetPersistentId": "doi:12.3456/dans-ab7-cdef",
		"metadataBlocks": {
			"citation": {
				"displayName": "Citation Metadata",
				"fields": [
					{
						"typeName": "title",
						"multiple": false,
						"typeClass": "primitive",
						"value": "my preferred title"
					},
					{
						"typeName": "dateOfDeposit",
						"multiple": false,
						"typeClass": "primitive",
						"value": "1992-07-30"
					},
					{
						"typeName": "distributionDate",
						"multiple": false,
						"typeClass": "primitive",
						"value": "2016-07-30"
					},
					{
						"typeName": "depositor",
						"multiple": false,
						"typeClass": "primitive",
						"value": "dataverseAdmin"
					}
				]
			},
			"dansRights": {
				"displayName": "Rights Metadata",
				"fields": [
					{
						"typeName": "accessRights",
						"multiple": false,
						"typeClass": "controlledVocabulary",
						"value": "REQUEST_PERMISSION"
					}
				]
			}
		}
	}
}`

const sparseDatasetVersionJson string = `{
	"status": "OK",
	"data": {
		"id": 25,
		"datasetPersistentId": "doi:10.5072/FK2/XXXXXX",
		"metadataBlocks": {
			"citation": {
				"displayName": "Citation Metadata",
				"fields": [
					{
						"typeName": "title",
						"multiple": false,
						"typeClass": "primitive",
						"value": "a dataset without dates"
					}
				]
			}
		}
	}
}`
