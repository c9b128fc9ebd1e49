// internal/services/catalog.go
package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/technsat/storefront/internal/changefeed"
)

// SQLSTATE for insufficient_privilege. The hosted catalog service returns it
// when the service key lacks grants on a table; operators need the hint, the
// admin user just sees a generic failure.
const permissionDeniedCode = "42501"

func isPermissionDenied(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == permissionDeniedCode
}

// logCatalogError logs a failed remote operation with its context. Expected
// failures never cross the access-layer boundary as errors; this log line is
// the only trace they leave.
func logCatalogError(operation string, err error, context logrus.Fields) {
	entry := logrus.WithField("operation", operation).WithFields(context).WithError(err)
	if isPermissionDenied(err) {
		entry.Error("catalog permission denied: check that the catalog service key has grants for this table")
		return
	}
	entry.Error("catalog operation failed")
}

func logValidationFailure(operation, reason string) {
	logrus.WithFields(logrus.Fields{
		"operation": operation,
		"reason":    reason,
	}).Warn("catalog validation failed")
}

// parseRecordID trims and parses an opaque record id. Empty or malformed ids
// fail validation before any remote call.
func parseRecordID(operation, id string) (uuid.UUID, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		logValidationFailure(operation, "valid id is required")
		return uuid.Nil, false
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		logValidationFailure(operation, "malformed id")
		return uuid.Nil, false
	}
	return parsed, true
}

func publishChange(feed changefeed.Broker, table string) {
	if feed != nil {
		feed.Publish(table)
	}
}

// orDefault substitutes the fallback when the trimmed value is blank. Used
// for image URLs so a blank image always becomes the entity placeholder.
func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
