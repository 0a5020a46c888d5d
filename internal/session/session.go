package session

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a sortable run identifier like 20261014-093000-1a2b3c4d.
func NewID() string {
	return NewIDAt(time.Now())
}

func NewIDAt(now time.Time) string {
	return now.Format("20060102-150405") + "-" + uuid.NewString()[:8]
}
