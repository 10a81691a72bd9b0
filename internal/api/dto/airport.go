package dto

import "flight-analytics-service/internal/domain"

type ImportResponse struct {
	RunID                   string   `json:"run_id"`
	Filename                string   `json:"filename"`
	TotalRecords            int      `json:"total_records"`
	RecordsInserted         int      `json:"records_inserted"`
	RecordsSkippedDuplicate int      `json:"records_skipped_duplicate"`
	RecordsSkippedError     int      `json:"records_skipped_error"`
	Errors                  []string `json:"errors"`
}

func NewImportResponse(r domain.ImportReport) ImportResponse {
	errs := r.Errors
	if errs == nil {
		errs = []string{}
	}
	return ImportResponse{
		RunID:                   r.RunID,
		Filename:                r.Filename,
		TotalRecords:            r.TotalRecords,
		RecordsInserted:         r.RecordsInserted,
		RecordsSkippedDuplicate: r.SkippedDuplicate,
		RecordsSkippedError:     r.SkippedError,
		Errors:                  errs,
	}
}
