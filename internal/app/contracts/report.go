package contracts

import (
	"context"
	"time"
)

// ReportUsecase builds back-office exports of the contact activity.
type ReportUsecase interface {
	// BuildContactHistoryReport renders the clinic's contact history between
	// from (inclusive) and to (exclusive) as an xlsx workbook.
	BuildContactHistoryReport(ctx context.Context, clinicID string, from, to time.Time) ([]byte, string, error)
}
