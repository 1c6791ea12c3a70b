package cart

import (
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var (
	lineItemSeq atomic.Uint64
	slugRe      = regexp.MustCompile(`[^a-z0-9]+`)
)

// NewLineItemID builds a fresh id for one customization: slugged name plus
// millisecond timestamp plus a random suffix. The process-wide counter keeps
// ids distinct even within the same millisecond.
func NewLineItemID(name string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "item"
	}
	seq := lineItemSeq.Add(1)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%d-%s", slug, time.Now().UnixMilli(), seq, suffix)
}
