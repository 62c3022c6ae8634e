package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
	"github.com/trugenie/go-tally-extraction/internal/common/metrics"
	"github.com/trugenie/go-tally-extraction/internal/common/tdl"
	"github.com/trugenie/go-tally-extraction/internal/config"
	"github.com/trugenie/go-tally-extraction/internal/models"
)

const logPrefixODBC = "[ODBC]"

var errODBCNotConfigured = errors.New("odbc channel is not configured")

type odbcChannel struct {
	db           *sql.DB
	timeout      time.Duration
	probeTimeout time.Duration
	metrics      metrics.Metrics
}

// NewODBCChannel builds the secondary channel over an already opened pool. A nil db
// yields a channel that always reports itself unreachable.
func NewODBCChannel(db *sql.DB, cfg config.Tally, mtc metrics.Metrics) Channel {
	return &odbcChannel{
		db:           db,
		timeout:      cfg.Timeout,
		probeTimeout: cfg.ProbeTimeout,
		metrics:      mtc,
	}
}

func (c *odbcChannel) Method() models.ExtractionMethod {
	return models.ExtractionMethodODBC
}

func (c *odbcChannel) Probe(ctx context.Context) error {
	if c.db == nil {
		return fmt.Errorf("%w: %w", models.ErrConnectionRefused, errODBCNotConfigured)
	}
	if c.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.probeTimeout)
		defer cancel()
	}
	if err := c.db.PingContext(ctx); err != nil {
		if ctx.Err() != nil {
			return classifyODBCError(ctx, err)
		}
		// a failed ping means the driver could not attach to the engine
		return fmt.Errorf("%w: %w", models.ErrConnectionRefused, err)
	}
	return nil
}

func (c *odbcChannel) Fetch(ctx context.Context, req tdl.Request) (records []models.RawRecord, err error) {
	if !req.Entity.OnSecondary() {
		return nil, fmt.Errorf("%w: %s via odbc", models.ErrUnsupportedOnChannel, req.Entity.Kind)
	}
	if c.db == nil {
		return nil, fmt.Errorf("%w: %w", models.ErrConnectionRefused, errODBCNotConfigured)
	}

	query, args, err := selectQuery(req.Entity)
	if err != nil {
		return nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	startTime := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = models.ErrorKind(err)
		}
		if c.metrics != nil {
			c.metrics.GetUpstreamPrometheus().Record(time.Since(startTime), string(models.ExtractionMethodODBC), string(req.Entity.Kind), outcome)
		}
		xlog.Debug(ctx, logPrefixODBC,
			xlog.String("query", query),
			xlog.Int("rows", len(records)),
			xlog.Duration("elapsed", time.Since(startTime)),
			xlog.String("outcome", outcome))
	}()

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyODBCError(ctx, err)
	}
	defer rows.Close()

	records, err = scanRecords(rows, req.Entity.SecondaryFields())
	if err != nil {
		return nil, classifyODBCError(ctx, err)
	}
	return records, nil
}

// selectQuery selects every secondary field by its $Method column, in declaration order.
func selectQuery(e tdl.Entity) (string, []any, error) {
	fields := e.SecondaryFields()
	columns := make([]string, 0, len(fields))
	for _, f := range fields {
		columns = append(columns, f.Column())
	}
	return sq.Select(columns...).From(e.Table).ToSql()
}

func scanRecords(rows *sql.Rows, fields []tdl.Field) ([]models.RawRecord, error) {
	var records []models.RawRecord
	for rows.Next() {
		values := make([]any, len(fields))
		dest := make([]any, len(fields))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		rec := models.NewRawRecord()
		for i, f := range fields {
			if s, ok := stringify(values[i]); ok {
				rec.Fields[f.Key] = s
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// stringify renders a driver value the way the XML channel would carry it. NULL is absent.
func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case []byte:
		return strings.TrimSpace(string(t)), true
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		if t {
			return "Yes", true
		}
		return "No", true
	case time.Time:
		return t.Format(models.DateLayoutTally), true
	default:
		return fmt.Sprint(t), true
	}
}

func classifyODBCError(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", models.ErrTimeout, err)
	case errors.Is(err, sql.ErrConnDone), isDialError(err):
		return fmt.Errorf("%w: %w", models.ErrConnectionRefused, err)
	default:
		return fmt.Errorf("%w: %w", models.ErrUpstream, err)
	}
}
