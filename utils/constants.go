package utils

import (
	"time"
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Analytics constants
const (
	// DefaultClickPageSize is used when a click listing does not specify a limit
	DefaultClickPageSize = 100

	// MaxClickPageSize caps a single click listing
	MaxClickPageSize = 1000

	// MaxExportRows caps the number of clicks written to one export workbook
	MaxExportRows = 100000

	// MaxBatchCountItems caps the item ids accepted by a batch counter read
	MaxBatchCountItems = 200

	// ExportTruncatedHeader tells export clients that MaxExportRows cut the range short
	ExportTruncatedHeader = "X-Export-Truncated"
)

// Request timeouts
const (
	// DefaultRequestTimeout bounds owner-facing API calls
	DefaultRequestTimeout = 30 * time.Second

	// IngestRequestTimeout bounds the public click ingestion endpoint
	IngestRequestTimeout = 5 * time.Second
)
