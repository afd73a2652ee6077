package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/fuel-service/internal/domain/dto"
	"github.com/guttosm/fuel-service/internal/service"
)

// AuditLogsHandler serves the persisted request and audit log for administrators.
type AuditLogsHandler struct {
	service service.LoggingService
}

// NewAuditLogsHandler creates a new AuditLogsHandler.
func NewAuditLogsHandler(svc service.LoggingService) *AuditLogsHandler {
	return &AuditLogsHandler{service: svc}
}

// List handles GET /api/admin/audit-logs.
//
// @Summary      List audit log entries
// @Description  Returns persisted request and audit entries, newest first, with the total matching the filters.
// @Tags         Audit Logs
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        action_type query string false "Action type, e.g. create_truck_class"
// @Param        level query string false "Log level" Enums(debug, info, warn, error)
// @Param        request_id query string false "Request id"
// @Param        path query string false "Request path prefix"
// @Param        start query string false "Earliest timestamp (RFC 3339)"
// @Param        end query string false "Latest timestamp (RFC 3339)"
// @Param        limit query int false "Page size" default(50) minimum(1) maximum(500)
// @Param        skip query int false "Entries to skip" default(0) minimum(0)
// @Success      200 {object} dto.SuccessResponse{data=dto.AuditLogListResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse "Log store unavailable"
// @Security     BearerAuth
// @Router       /api/admin/audit-logs [get]
func (h *AuditLogsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.AuditLogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.ValidationError(err)
		return
	}
	opts, err := query.Options()
	if err != nil {
		builder.ValidationError(err)
		return
	}

	ctx := c.Request.Context()
	entries, err := h.service.QueryLogs(ctx, opts)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	total, err := h.service.CountLogs(ctx, opts)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.NewAuditLogListResponse(entries, total, opts))
}
