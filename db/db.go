// Package db stores exported charts so the device site can list and upload
// them later.
package db

import (
	"regexp"
	"strings"

	"github.com/jsphweid/synchro/constants"
	"github.com/jsphweid/synchro/model"
)

type Library interface {
	Save(name string, c model.Chart) error
	Get(name string) (model.Chart, error)
	List() ([]model.ChartSummary, error)
}

// Open picks DynamoDB when DYNAMO_ENDPOINT is set and the chart directory
// otherwise.
func Open() (Library, error) {
	if endpoint := constants.GetDynamoEndpoint(); endpoint != "" {
		return NewDynamoLibrary(endpoint, constants.GetChartTable())
	}
	return NewFileLibrary(constants.GetChartDir())
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a song name into a library name: "My Song!" -> "my-song".
func Slug(songName string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(songName), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}

func validName(name string) bool {
	return name != "" && Slug(name) == name
}
