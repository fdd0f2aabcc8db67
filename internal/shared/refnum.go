package shared

import (
	"strings"

	"github.com/google/uuid"
)

// NewReferenceNumber generates a unique reference for transfers that arrive
// without one.
func NewReferenceNumber() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "REF-" + strings.ToUpper(token[:12])
}
