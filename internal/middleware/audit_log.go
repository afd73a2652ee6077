package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/logger"
)

// AuditLog records a successful operator or admin action.
// The entry is always logged and, when persistence is on, queued on the async logger.
func AuditLog(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	recordAudit(newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed action.
func AuditLogError(c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	entry := newAuditEntry(c, "warn", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	recordAudit(entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Actor:      GetActor(c),
		ActionType: actionType,
		Fields:     fields,
	}
}

func recordAudit(entry *model.LogEntry) {
	log := logger.Component("audit")
	event := log.Info()
	if entry.Level == "warn" {
		event = log.Warn()
	}
	event.
		Str("request_id", entry.RequestID).
		Str("action_type", entry.ActionType).
		Str("actor", entry.Actor).
		Str("path", entry.Path).
		Func(func(e *zerolog.Event) {
			if entry.Error != "" {
				e.Str("error", entry.Error)
			}
			if len(entry.Fields) > 0 {
				e.Fields(entry.Fields)
			}
		}).
		Msg(entry.Message)

	if al := GetAsyncLogger(); al != nil {
		al.Log(entry)
	}
}
