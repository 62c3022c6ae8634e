package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/trugenie/go-tally-extraction/internal/models"
)

const KeyPrefix = "tally:"

type Client[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Set(ctx context.Context, key string, object T, ttl time.Duration) error
	// Flush drops every entry owned by the client.
	Flush(ctx context.Context) error
}

var (
	ErrNotExists   = errors.New("key not exists on cache storage")
	ErrInvalidType = errors.New("invalid type result")
)

// Entry is one memoized extraction result.
type Entry struct {
	Payload   json.RawMessage         `json:"payload"`
	Method    models.ExtractionMethod `json:"extraction_method"`
	FetchedAt time.Time               `json:"fetched_at"`
}

// Key scopes an entity kind to a company: tally:<kind>:<company>.
func Key(kind models.EntityKind, company string) string {
	return fmt.Sprintf("%s%s:%s", KeyPrefix, kind, strings.TrimSpace(company))
}
