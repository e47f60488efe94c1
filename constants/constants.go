package constants

import (
	"os"
	"strings"
)

// Columns is the number of lanes (slots) on the device.
const Columns = 4

// TimePerRow is the quantization step of the editor grid in milliseconds.
const TimePerRow = 200

const DefaultSongLengthSeconds = 10.0

// Used when a chart leaves songName or artist blank.
const UnknownMetadata = "Unknown"

func GetChartDir() string {
	path := os.Getenv("CHART_DIR")
	if path != "" {
		return path
	}
	return "./charts"
}

func GetAddr() string {
	addr := os.Getenv("SYNCHRO_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetChartTable() string {
	table := os.Getenv("CHART_TABLE")
	if table != "" {
		return table
	}
	return "synchro-charts"
}

// GetDynamoEndpoint returns "" when charts should live on disk instead.
func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMO_ENDPOINT")
}

func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

func GetAllowedOrigins() []string {
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		return []string{"*"}
	}
	var res []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}
