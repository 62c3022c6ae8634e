package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/trugenie/go-tally-extraction/internal/common/cache"
	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
	"github.com/trugenie/go-tally-extraction/internal/common/metrics"
	"github.com/trugenie/go-tally-extraction/internal/common/tdl"
	"github.com/trugenie/go-tally-extraction/internal/models"
	"github.com/trugenie/go-tally-extraction/internal/monitoring"
	"github.com/trugenie/go-tally-extraction/internal/repositories"
)

const (
	DefaultVoucherLimit = 500
	MaxVoucherLimit     = 10000
	DefaultTopLimit     = 10
	MaxTopLimit         = 1000
)

// VoucherQuery filters a voucher extraction. Empty dates default to the fiscal year.
type VoucherQuery struct {
	Type           string
	From           string
	To             string
	Limit          int
	IncludeEntries bool
}

type ExtractionService interface {
	Context() models.CompanyContext

	GetCompanies(ctx context.Context) models.Envelope
	GetCompanyInfo(ctx context.Context, refresh bool) models.Envelope

	GetLedgers(ctx context.Context, refresh bool) models.Envelope
	SearchLedger(ctx context.Context, name string) models.Envelope
	GetLedgersByGroup(ctx context.Context, group string) models.Envelope
	GetBankAccounts(ctx context.Context) models.Envelope
	GetCashAccounts(ctx context.Context) models.Envelope
	GetFixedAssets(ctx context.Context) models.Envelope
	GetLoans(ctx context.Context) models.Envelope
	GetDebtors(ctx context.Context) models.Envelope
	GetCreditors(ctx context.Context) models.Envelope
	GetTopDebtors(ctx context.Context, limit int) models.Envelope
	GetTopCreditors(ctx context.Context, limit int) models.Envelope

	GetGroups(ctx context.Context, refresh bool) models.Envelope
	GetCostCentres(ctx context.Context, refresh bool) models.Envelope

	GetVouchers(ctx context.Context, q VoucherQuery) models.Envelope
	GetDayBook(ctx context.Context, date string) models.Envelope

	GetTrialBalance(ctx context.Context) models.Envelope
	GetFinancialSummary(ctx context.Context) models.Envelope
	GetGroupSummary(ctx context.Context) models.Envelope
	ExportAll(ctx context.Context) models.Envelope

	SwitchCompany(ctx context.Context, company, mode string) models.Envelope
	HealthCheck(ctx context.Context) models.Envelope
}

type extraction service

var _ ExtractionService = (*extraction)(nil)

// call is the state of one facade operation: the company scope it started with and the
// transport session all of its fetches share.
type call struct {
	srv     *Services
	cc      models.CompanyContext
	session repositories.Session

	mu     sync.Mutex
	method models.ExtractionMethod
}

// note records the method of the first payload of the call; that is the method reported.
func (c *call) note(method models.ExtractionMethod) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.method == "" {
		c.method = method
	}
}

func (c *call) extractionMethod() models.ExtractionMethod {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.method
}

type result struct {
	data  any
	count *int
}

func list[T any](items []T) result {
	if items == nil {
		items = []T{}
	}
	return result{data: items, count: models.CountOf(len(items))}
}

func single(data any) result {
	return result{data: data}
}

// run executes one operation under the read lock and turns the outcome into an envelope.
func (s *extraction) run(ctx context.Context, operation string, fn func(ctx context.Context, c *call) (result, error)) models.Envelope {
	s.srv.mu.RLock()
	defer s.srv.mu.RUnlock()

	c := &call{
		srv:     s.srv,
		cc:      s.srv.cc,
		session: s.srv.selector.NewSession(s.srv.cc.Mode),
	}

	var err error
	monitor := monitoring.New(ctx, monitoring.WithLayer(monitoring.LayerService), monitoring.WithOperation(operation))
	defer func() {
		monitor.Finish(
			monitoring.WithFinishCheckError(err),
			monitoring.WithFinishXlogFields(
				xlog.String("company", c.cc.Company),
				xlog.String("extraction_method", string(c.extractionMethod()))))
	}()

	res, err := fn(ctx, c)
	if err != nil {
		return models.NewErrorEnvelope(err, s.srv.now())
	}
	return models.NewSuccessEnvelope(res.data, res.count, c.extractionMethod(), s.srv.now())
}

func (s *extraction) Context() models.CompanyContext {
	s.srv.mu.RLock()
	defer s.srv.mu.RUnlock()
	return s.srv.cc
}

func (s *Services) cacheMetrics() *metrics.CachePrometheusMetrics {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.GetCachePrometheus()
}

// fetchReport builds, fetches and normalizes one template-report entity.
func fetchReport[T any](ctx context.Context, c *call, kind models.EntityKind, normalize func([]models.RawRecord) (T, error)) (out T, method models.ExtractionMethod, err error) {
	req, err := tdl.BuildReport(tdl.MustLookup(kind), c.cc.Company)
	if err != nil {
		return out, "", err
	}
	records, method, err := c.session.Fetch(ctx, req)
	if err != nil {
		return out, "", err
	}
	out, err = normalize(records)
	if err != nil {
		return out, "", err
	}
	return out, method, nil
}

// cached serves kind from the result cache unless refresh is set. A fresh result is stored
// only after it normalized completely and while the caller is still waiting for it.
func cached[T any](ctx context.Context, c *call, kind models.EntityKind, refresh bool, normalize func([]models.RawRecord) (T, error)) (T, error) {
	key := cache.Key(kind, c.cc.Company)
	cm := c.srv.cacheMetrics()

	if refresh {
		cm.Record(string(kind), metrics.CacheBypass)
	} else {
		entry, err := c.srv.cache.Get(ctx, key)
		switch {
		case err == nil:
			var out T
			if err := json.Unmarshal(entry.Payload, &out); err == nil {
				cm.Record(string(kind), metrics.CacheHit)
				c.note(entry.Method)
				return out, nil
			}
			xlog.Warn(ctx, "[CACHE] dropping undecodable entry", xlog.String("key", key))
		case !errors.Is(err, cache.ErrNotExists):
			xlog.Warn(ctx, "[CACHE] lookup failed", xlog.String("key", key), xlog.Err(err))
		}
		cm.Record(string(kind), metrics.CacheMiss)
	}

	out, method, err := fetchReport(ctx, c, kind, normalize)
	if err != nil {
		return out, err
	}
	c.note(method)

	if ctx.Err() != nil {
		return out, nil
	}
	payload, err := json.Marshal(out)
	if err != nil {
		xlog.Warn(ctx, "[CACHE] encode failed", xlog.String("key", key), xlog.Err(err))
		return out, nil
	}
	entry := cache.Entry{Payload: payload, Method: method, FetchedAt: c.srv.now()}
	if err := c.srv.cache.Set(ctx, key, entry, c.srv.conf.Cache.TTL); err != nil {
		xlog.Warn(ctx, "[CACHE] store failed", xlog.String("key", key), xlog.Err(err))
	}
	return out, nil
}

func (c *call) ledgers(ctx context.Context, refresh bool) ([]models.Ledger, error) {
	company := c.cc.Company
	return cached(ctx, c, models.EntityLedger, refresh, func(records []models.RawRecord) ([]models.Ledger, error) {
		return NormalizeLedgers(records, company)
	})
}

func (c *call) groups(ctx context.Context, refresh bool) ([]models.Group, error) {
	return cached(ctx, c, models.EntityGroup, refresh, NormalizeGroups)
}

func (c *call) costCentres(ctx context.Context, refresh bool) ([]models.CostCentre, error) {
	return cached(ctx, c, models.EntityCostCentre, refresh, NormalizeCostCentres)
}

func (c *call) companyInfo(ctx context.Context, refresh bool) (models.CompanyInfo, error) {
	company := c.cc.Company
	return cached(ctx, c, models.EntityCompanyInfo, refresh, func(records []models.RawRecord) (models.CompanyInfo, error) {
		return NormalizeCompanyInfo(records, company)
	})
}

// classified loads ledgers then the group tree; the ledgers decide the reported method.
func (c *call) classified(ctx context.Context) ([]models.Ledger, Classifier, error) {
	ledgers, err := c.ledgers(ctx, false)
	if err != nil {
		return nil, Classifier{}, err
	}
	groups, err := c.groups(ctx, false)
	if err != nil {
		return nil, Classifier{}, err
	}
	return ledgers, NewClassifier(groups), nil
}

func (c *call) vouchers(ctx context.Context, q VoucherQuery) ([]models.Voucher, error) {
	from, to := q.From, q.To
	if from == "" {
		from = c.cc.FYStart.Tally()
	}
	if to == "" {
		to = c.cc.FYEnd.Tally()
	}

	req, err := tdl.BuildCollection(tdl.MustLookup(models.EntityVoucher), c.cc.Company, from, to)
	if err != nil {
		return nil, err
	}
	records, method, err := c.session.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	vouchers, err := NormalizeVouchers(records, c.cc.Company)
	if err != nil {
		return nil, err
	}
	c.note(method)
	return FilterVouchers(vouchers, q.Type, q.Limit, q.IncludeEntries), nil
}

func (s *extraction) GetCompanies(ctx context.Context) models.Envelope {
	return s.run(ctx, "GetCompanies", func(ctx context.Context, c *call) (result, error) {
		names, method, err := fetchReport(ctx, c, models.EntityCompanyList, NormalizeCompanies)
		if err != nil {
			return result{}, err
		}
		c.note(method)
		return list(names), nil
	})
}

func (s *extraction) GetCompanyInfo(ctx context.Context, refresh bool) models.Envelope {
	return s.run(ctx, "GetCompanyInfo", func(ctx context.Context, c *call) (result, error) {
		info, err := c.companyInfo(ctx, refresh)
		if err != nil {
			return result{}, err
		}
		return single(info), nil
	})
}

func (s *extraction) GetLedgers(ctx context.Context, refresh bool) models.Envelope {
	return s.run(ctx, "GetLedgers", func(ctx context.Context, c *call) (result, error) {
		ledgers, err := c.ledgers(ctx, refresh)
		if err != nil {
			return result{}, err
		}
		return list(ledgers), nil
	})
}

func (s *extraction) SearchLedger(ctx context.Context, name string) models.Envelope {
	return s.run(ctx, "SearchLedger", func(ctx context.Context, c *call) (result, error) {
		if strings.TrimSpace(name) == "" {
			return result{}, fmt.Errorf("%w: ledger name is empty", models.ErrInvalidParameter)
		}
		ledgers, err := c.ledgers(ctx, false)
		if err != nil {
			return result{}, err
		}
		l, ok := FindLedger(ledgers, name)
		if !ok {
			return result{}, fmt.Errorf("%w: ledger %q", models.ErrNotFound, name)
		}
		return single(l), nil
	})
}

func (s *extraction) GetLedgersByGroup(ctx context.Context, group string) models.Envelope {
	return s.run(ctx, "GetLedgersByGroup", func(ctx context.Context, c *call) (result, error) {
		if strings.TrimSpace(group) == "" {
			return result{}, fmt.Errorf("%w: group name is empty", models.ErrInvalidParameter)
		}
		ledgers, classifier, err := c.classified(ctx)
		if err != nil {
			return result{}, err
		}
		return list(classifier.FilterGroup(ledgers, group)), nil
	})
}

func (s *extraction) bucket(ctx context.Context, operation string, b Bucket) models.Envelope {
	return s.run(ctx, operation, func(ctx context.Context, c *call) (result, error) {
		ledgers, classifier, err := c.classified(ctx)
		if err != nil {
			return result{}, err
		}
		return list(classifier.Filter(ledgers, b)), nil
	})
}

func (s *extraction) GetBankAccounts(ctx context.Context) models.Envelope {
	return s.bucket(ctx, "GetBankAccounts", BucketBankAccounts)
}

func (s *extraction) GetCashAccounts(ctx context.Context) models.Envelope {
	return s.bucket(ctx, "GetCashAccounts", BucketCashAccounts)
}

func (s *extraction) GetFixedAssets(ctx context.Context) models.Envelope {
	return s.bucket(ctx, "GetFixedAssets", BucketFixedAssets)
}

func (s *extraction) GetLoans(ctx context.Context) models.Envelope {
	return s.bucket(ctx, "GetLoans", BucketLoans)
}

func (s *extraction) GetDebtors(ctx context.Context) models.Envelope {
	return s.bucket(ctx, "GetDebtors", BucketSundryDebtors)
}

func (s *extraction) GetCreditors(ctx context.Context) models.Envelope {
	return s.bucket(ctx, "GetCreditors", BucketSundryCreditors)
}

func (s *extraction) top(ctx context.Context, operation string, b Bucket, limit int) models.Envelope {
	return s.run(ctx, operation, func(ctx context.Context, c *call) (result, error) {
		if limit == 0 {
			limit = DefaultTopLimit
		}
		if limit < 0 || limit > MaxTopLimit {
			return result{}, fmt.Errorf("%w: limit must be between 1 and %d", models.ErrInvalidParameter, MaxTopLimit)
		}
		ledgers, classifier, err := c.classified(ctx)
		if err != nil {
			return result{}, err
		}
		return list(TopByClosing(classifier.Filter(ledgers, b), limit)), nil
	})
}

func (s *extraction) GetTopDebtors(ctx context.Context, limit int) models.Envelope {
	return s.top(ctx, "GetTopDebtors", BucketSundryDebtors, limit)
}

func (s *extraction) GetTopCreditors(ctx context.Context, limit int) models.Envelope {
	return s.top(ctx, "GetTopCreditors", BucketSundryCreditors, limit)
}

func (s *extraction) GetGroups(ctx context.Context, refresh bool) models.Envelope {
	return s.run(ctx, "GetGroups", func(ctx context.Context, c *call) (result, error) {
		groups, err := c.groups(ctx, refresh)
		if err != nil {
			return result{}, err
		}
		return list(groups), nil
	})
}

func (s *extraction) GetCostCentres(ctx context.Context, refresh bool) models.Envelope {
	return s.run(ctx, "GetCostCentres", func(ctx context.Context, c *call) (result, error) {
		centres, err := c.costCentres(ctx, refresh)
		if err != nil {
			return result{}, err
		}
		return list(centres), nil
	})
}

func (s *extraction) GetVouchers(ctx context.Context, q VoucherQuery) models.Envelope {
	return s.run(ctx, "GetVouchers", func(ctx context.Context, c *call) (result, error) {
		if q.Limit == 0 {
			q.Limit = DefaultVoucherLimit
		}
		if q.Limit < 0 || q.Limit > MaxVoucherLimit {
			return result{}, fmt.Errorf("%w: limit must be between 1 and %d", models.ErrInvalidParameter, MaxVoucherLimit)
		}
		vouchers, err := c.vouchers(ctx, q)
		if err != nil {
			return result{}, err
		}
		return list(vouchers), nil
	})
}

// GetDayBook lists every voucher of one date, today when date is empty.
func (s *extraction) GetDayBook(ctx context.Context, date string) models.Envelope {
	return s.run(ctx, "GetDayBook", func(ctx context.Context, c *call) (result, error) {
		if date == "" {
			date = s.srv.now().Format(models.DateLayoutTally)
		}
		day, err := models.ParseTallyDate(date)
		if err != nil {
			return result{}, err
		}
		vouchers, err := c.vouchers(ctx, VoucherQuery{From: date, To: date, Limit: MaxVoucherLimit})
		if err != nil {
			return result{}, err
		}
		db := DayBook(day, vouchers)
		return result{data: db, count: models.CountOf(len(db.Vouchers))}, nil
	})
}

func (s *extraction) GetTrialBalance(ctx context.Context) models.Envelope {
	return s.run(ctx, "GetTrialBalance", func(ctx context.Context, c *call) (result, error) {
		ledgers, err := c.ledgers(ctx, false)
		if err != nil {
			return result{}, err
		}
		tb := TrialBalance(ledgers)
		return result{data: tb, count: models.CountOf(len(tb.Rows))}, nil
	})
}

func (s *extraction) GetFinancialSummary(ctx context.Context) models.Envelope {
	return s.run(ctx, "GetFinancialSummary", func(ctx context.Context, c *call) (result, error) {
		ledgers, classifier, err := c.classified(ctx)
		if err != nil {
			return result{}, err
		}
		return single(FinancialSummary(c.cc.Company, ledgers, classifier)), nil
	})
}

func (s *extraction) GetGroupSummary(ctx context.Context) models.Envelope {
	return s.run(ctx, "GetGroupSummary", func(ctx context.Context, c *call) (result, error) {
		ledgers, err := c.ledgers(ctx, false)
		if err != nil {
			return result{}, err
		}
		return list(GroupSummary(ledgers)), nil
	})
}

// ExportAll gathers every entity and report in one session. Ledgers go first so they
// decide the reported method; the rest is fetched concurrently.
func (s *extraction) ExportAll(ctx context.Context) models.Envelope {
	return s.run(ctx, "ExportAll", func(ctx context.Context, c *call) (result, error) {
		ledgers, err := c.ledgers(ctx, false)
		if err != nil {
			return result{}, err
		}

		var (
			info     models.CompanyInfo
			groups   []models.Group
			centres  []models.CostCentre
			vouchers []models.Voucher
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			info, err = c.companyInfo(gctx, false)
			return err
		})
		g.Go(func() (err error) {
			groups, err = c.groups(gctx, false)
			return err
		})
		g.Go(func() (err error) {
			centres, err = c.costCentres(gctx, false)
			return err
		})
		g.Go(func() (err error) {
			vouchers, err = c.vouchers(gctx, VoucherQuery{Limit: MaxVoucherLimit, IncludeEntries: true})
			return err
		})
		if err := g.Wait(); err != nil {
			return result{}, err
		}

		export := models.Export{
			CompanyInfo:         info,
			Groups:              groups,
			Ledgers:             ledgers,
			CostCentres:         centres,
			Vouchers:            vouchers,
			TrialBalance:        TrialBalance(ledgers),
			FinancialSummary:    FinancialSummary(c.cc.Company, ledgers, NewClassifier(groups)),
			ExtractionTimestamp: s.srv.now(),
		}
		return single(export), nil
	})
}

// SwitchCompany swaps the company scope and clears the result cache as one step. An empty
// mode keeps the current transport mode.
func (s *extraction) SwitchCompany(ctx context.Context, company, mode string) (env models.Envelope) {
	var err error
	monitor := monitoring.New(ctx, monitoring.WithLayer(monitoring.LayerService), monitoring.WithOperation("SwitchCompany"))
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err), monitoring.WithFinishXlogFields(xlog.String("company", company)))
	}()

	s.srv.mu.Lock()
	defer s.srv.mu.Unlock()

	next, err := s.nextContext(company, mode)
	if err != nil {
		return models.NewErrorEnvelope(err, s.srv.now())
	}
	if err = s.srv.cache.Flush(ctx); err != nil {
		err = fmt.Errorf("clear result cache: %w", err)
		return models.NewErrorEnvelope(err, s.srv.now())
	}
	s.srv.cacheMetrics().RecordFlush()
	s.srv.cc = next

	return models.NewSuccessEnvelope(next, nil, "", s.srv.now())
}

func (s *extraction) nextContext(company, mode string) (models.CompanyContext, error) {
	var m models.TransportMode
	if strings.TrimSpace(mode) != "" {
		parsed, err := models.ParseTransportMode(mode)
		if err != nil {
			return models.CompanyContext{}, err
		}
		m = parsed
	}
	next := s.srv.cc.WithCompany(company, m)
	return next, next.Validate()
}

// HealthCheck probes both channels. It always succeeds; reachability is in the data.
func (s *extraction) HealthCheck(ctx context.Context) models.Envelope {
	cc := s.Context()
	probes := s.srv.selector.ProbeAll(ctx)

	report := models.HealthReport{
		Company: cc.Company,
		XMLAPI:  channelHealth(probes.Primary),
		ODBC:    channelHealth(probes.Secondary),
	}
	switch {
	case cc.Mode != models.TransportModeODBC && report.XMLAPI.Reachable:
		report.ActiveMethod = models.ExtractionMethodXMLAPI
	case cc.Mode != models.TransportModeXMLAPI && report.ODBC.Reachable:
		report.ActiveMethod = models.ExtractionMethodODBC
	}

	xlog.Info(ctx, "[HEALTH]",
		xlog.Bool("xml_api", report.XMLAPI.Reachable),
		xlog.Bool("odbc", report.ODBC.Reachable))

	return models.NewSuccessEnvelope(report, nil, report.ActiveMethod, s.srv.now())
}

func channelHealth(err error) models.ChannelHealth {
	if err != nil {
		return models.ChannelHealth{Reachable: false, Error: err.Error()}
	}
	return models.ChannelHealth{Reachable: true}
}
