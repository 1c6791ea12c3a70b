package orders

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var orderSeq atomic.Uint64

// NewOrderID builds a customer-facing order id: configured prefix plus
// millisecond timestamp plus a short random suffix. The counter keeps ids
// distinct for submissions landing in the same millisecond.
func NewOrderID(prefix string) string {
	if strings.TrimSpace(prefix) == "" {
		prefix = "ORD"
	}
	seq := orderSeq.Add(1)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s-%d-%d-%s", prefix, time.Now().UnixMilli(), seq, suffix)
}
