package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID generates an entity id of the form <unix-milli>-<suffix>. The
// timestamp prefix keeps ids roughly sortable by creation time; the suffix
// disambiguates entities created within the same millisecond.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
