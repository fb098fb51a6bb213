package common

import (
	"time"

	"github.com/swapapp/backend/pkg/crypto"
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

// Now is the clock every domain reads, so tests can freeze time.
func Now() time.Time {
	return nowFunc()
}

// IdempotencyKey derives a deterministic ledger key from the triggering row
// and action, so a retried review or webhook cannot pay twice.
func IdempotencyKey(parts ...string) string {
	joined := ""
	for _, p := range parts {
		joined += p + "|"
	}

	return crypto.SHA256([]byte(joined))
}
