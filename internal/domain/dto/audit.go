package dto

import (
	"time"

	"github.com/guttosm/fuel-service/internal/domain/model"
)

// Audit log paging limits.
const (
	DefaultAuditLogLimit = 50
	MaxAuditLogLimit     = 500
)

// AuditLogQuery holds the filters accepted by the audit log listing.
type AuditLogQuery struct {
	ActionType string `form:"action_type" binding:"omitempty,max=64"`
	Level      string `form:"level" binding:"omitempty,oneof=debug info warn error"`
	RequestID  string `form:"request_id" binding:"omitempty,max=128"`
	Path       string `form:"path" binding:"omitempty,max=256"`
	// Start and End bound the entry timestamp and use RFC 3339.
	Start string `form:"start"`
	End   string `form:"end"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Skip  int    `form:"skip" binding:"omitempty,min=0"`
}

// Options validates the time window and converts the query to repository options.
func (q *AuditLogQuery) Options() (model.LogQueryOptions, error) {
	opts := model.LogQueryOptions{
		ActionType: q.ActionType,
		Level:      q.Level,
		RequestID:  q.RequestID,
		Path:       q.Path,
		Limit:      q.Limit,
		Skip:       q.Skip,
	}
	if opts.Limit == 0 {
		opts.Limit = DefaultAuditLogLimit
	}

	start, err := parseBound("start", q.Start)
	if err != nil {
		return opts, err
	}
	end, err := parseBound("end", q.End)
	if err != nil {
		return opts, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return opts, &ValidationError{Field: "end", Message: "must not be before start"}
	}
	opts.StartTime, opts.EndTime = start, end
	return opts, nil
}

func parseBound(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, &ValidationError{Field: field, Message: "must be an RFC 3339 timestamp"}
	}
	return &t, nil
}

// AuditLogListResponse is one page of audit log entries.
type AuditLogListResponse struct {
	Items []model.LogEntry `json:"items"`
	Count int              `json:"count" example:"50"`
	// Total counts every entry matching the filters, ignoring paging.
	Total int64 `json:"total" example:"1320"`
	Limit int   `json:"limit" example:"50"`
	Skip  int   `json:"skip" example:"0"`
} // @name AuditLogListResponse

// NewAuditLogListResponse wraps a page of entries, normalising nil to an empty list.
func NewAuditLogListResponse(items []model.LogEntry, total int64, opts model.LogQueryOptions) AuditLogListResponse {
	if items == nil {
		items = []model.LogEntry{}
	}
	return AuditLogListResponse{Items: items, Count: len(items), Total: total, Limit: opts.Limit, Skip: opts.Skip}
}
