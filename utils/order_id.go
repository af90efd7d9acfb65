package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderID returns a short human-pasteable reference for a request,
// e.g. FIN-9F2C41D07A8B.
func GenerateOrderID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "FIN-" + raw[:12]
}
