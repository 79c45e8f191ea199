package paymentwindow

import (
	"strings"

	"github.com/google/uuid"
)

// NewReference returns a random 32 character order reference for hosts
// without their own order numbering.
func NewReference() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
