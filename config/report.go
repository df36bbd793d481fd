package config

import (
	"fmt"
	"os"
	"strconv"
)

// ReportConfig controls persistence of per-asset run reports. An empty table
// name disables reporting.
type ReportConfig struct {
	TableName  string
	TtlMinutes int
}

func GetReportConfig() (*ReportConfig, error) {
	tableName := os.Getenv("RUN_REPORT_TABLE")

	ttlMinutes := 10080
	if raw := os.Getenv("RUN_REPORT_TTL_MINUTES"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("RUN_REPORT_TTL_MINUTES must be a positive integer")
		}
		ttlMinutes = parsed
	}

	return &ReportConfig{
		TableName:  tableName,
		TtlMinutes: ttlMinutes,
	}, nil
}
