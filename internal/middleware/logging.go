// internal/middleware/logging.go
package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/modaluxe/backoffice/internal/models"
)

var methodActions = map[string]string{
	"POST":   "create",
	"PUT":    "update",
	"PATCH":  "update",
	"DELETE": "delete",
}

// ActivityLogMiddleware persists a record of every catalog write. Reads
// and health checks are skipped; the insert happens off the request path.
func ActivityLogMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		action, logged := methodActions[c.Request.Method]
		if !logged || c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		// Read request body so it can be recorded and still consumed
		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		c.Next()

		userID, _ := c.Get("user_id")
		var userUUID *uuid.UUID
		if userID != nil {
			if uid, ok := userID.(string); ok {
				if parsed, err := uuid.Parse(uid); err == nil {
					userUUID = &parsed
				}
			}
		}

		var details map[string]interface{}
		if len(requestBody) > 0 {
			json.Unmarshal(requestBody, &details)
		}
		delete(details, "password")

		entry := &models.ActivityLog{
			UserID:     userUUID,
			Action:     action,
			EntityType: extractEntityType(c.Request.URL.Path),
			Details:    models.JSONB(details),
			IPAddress:  c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}

		// Entity ID comes from the URL for nested routes, from the query
		// string for deletes, and from the body for collection-level updates.
		if entityID := extractEntityID(c); entityID != "" {
			if parsed, err := uuid.Parse(entityID); err == nil {
				entry.EntityID = &parsed
			}
		}
		if entry.EntityID == nil {
			if idStr, ok := details["id"].(string); ok {
				if parsed, err := uuid.Parse(idStr); err == nil {
					entry.EntityID = &parsed
				}
			}
		}

		// Only record writes the endpoint accepted
		if c.Writer.Status() < 400 {
			go func() {
				if err := db.Create(entry).Error; err != nil {
					logrus.WithError(err).Error("Failed to record activity log")
				}
			}()
		}
	}
}

func extractEntityType(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		if part == "admin" && i+1 < len(parts) {
			return strings.TrimSuffix(parts[i+1], "s")
		}
	}
	if len(parts) >= 2 && parts[0] == "v1" {
		return parts[1]
	}
	return "unknown"
}

func extractEntityID(c *gin.Context) string {
	parts := strings.Split(strings.Trim(c.Request.URL.Path, "/"), "/")
	for _, part := range parts {
		if _, err := uuid.Parse(part); err == nil {
			return part
		}
	}
	if id := c.Query("id"); id != "" {
		return id
	}
	return ""
}

// RequestLogger emits one structured access log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logrus.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).Milliseconds(),
			"ip":       c.ClientIP(),
		}).Info("request")
	}
}
