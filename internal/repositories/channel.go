package repositories

import (
	"context"

	"github.com/trugenie/go-tally-extraction/internal/common/tdl"
	"github.com/trugenie/go-tally-extraction/internal/models"
)

// Channel is one way of reaching the accounting engine.
type Channel interface {
	Method() models.ExtractionMethod
	// Probe is a cheap reachability check bounded by the channel's probe timeout.
	Probe(ctx context.Context) error
	Fetch(ctx context.Context, req tdl.Request) ([]models.RawRecord, error)
}
