package pages

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sanjijikfarm/models"
	"sanjijikfarm/utils"
)

// ReportAPI is the slice of the marketplace API the report page consumes.
type ReportAPI interface {
	WeeklyCarbon(ctx context.Context, ym models.YearMonth) ([]models.WeeklyCarbon, error)
	MonthlyCarbon(ctx context.Context, ym models.YearMonth) (models.MonthlyCarbon, error)
	ProductCarbon(ctx context.Context, ym models.YearMonth) ([]models.ProductCarbon, error)
}

// reportCacheTTL is the freshness window of each month-keyed query.
const reportCacheTTL = 5 * time.Minute

// ReportData bundles one month's three carbon datasets.
type ReportData struct {
	Weekly   []models.WeeklyCarbon
	Monthly  models.MonthlyCarbon
	Products []models.ProductCarbon
}

// ReportLoader fetches the three carbon datasets for a month. Each dataset
// is cached under its own (kind, year, month) key, so revisiting a month
// inside the freshness window costs no upstream calls.
type ReportLoader struct {
	api   ReportAPI
	cache *cache.Cache
}

// NewReportLoader returns a loader with an empty cache.
func NewReportLoader(api ReportAPI) *ReportLoader {
	return &ReportLoader{
		api:   api,
		cache: cache.New(reportCacheTTL, 10*time.Minute),
	}
}

// Load fetches all three datasets concurrently. A failure of any single
// query fails the whole load; no partial result is returned.
func (l *ReportLoader) Load(ctx context.Context, ym models.YearMonth) (ReportData, error) {
	var data ReportData

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		data.Weekly, err = l.weekly(egCtx, ym)
		return err
	})
	eg.Go(func() error {
		var err error
		data.Monthly, err = l.monthly(egCtx, ym)
		return err
	})
	eg.Go(func() error {
		var err error
		data.Products, err = l.products(egCtx, ym)
		return err
	})
	if err := eg.Wait(); err != nil {
		return ReportData{}, err
	}
	return data, nil
}

func (l *ReportLoader) weekly(ctx context.Context, ym models.YearMonth) ([]models.WeeklyCarbon, error) {
	key := "weekly:" + ym.String()
	if cached, ok := l.cache.Get(key); ok {
		return cached.([]models.WeeklyCarbon), nil
	}
	weeks, err := l.api.WeeklyCarbon(ctx, ym)
	if err != nil {
		return nil, err
	}
	l.cache.Set(key, weeks, cache.DefaultExpiration)
	return weeks, nil
}

func (l *ReportLoader) monthly(ctx context.Context, ym models.YearMonth) (models.MonthlyCarbon, error) {
	key := "monthly:" + ym.String()
	if cached, ok := l.cache.Get(key); ok {
		return cached.(models.MonthlyCarbon), nil
	}
	monthly, err := l.api.MonthlyCarbon(ctx, ym)
	if err != nil {
		return models.MonthlyCarbon{}, err
	}
	l.cache.Set(key, monthly, cache.DefaultExpiration)
	return monthly, nil
}

func (l *ReportLoader) products(ctx context.Context, ym models.YearMonth) ([]models.ProductCarbon, error) {
	key := "products:" + ym.String()
	if cached, ok := l.cache.Get(key); ok {
		return cached.([]models.ProductCarbon), nil
	}
	products, err := l.api.ProductCarbon(ctx, ym)
	if err != nil {
		return nil, err
	}
	l.cache.Set(key, products, cache.DefaultExpiration)
	return products, nil
}

// ReportStatus tags the report page's combined load state.
type ReportStatus int

const (
	ReportLoading ReportStatus = iota
	ReportLoaded
	ReportFailed
)

// ReportPage owns the month cursor and derives the presentation views from
// the loaded datasets.
type ReportPage struct {
	loader *ReportLoader
	log    *zap.Logger
	now    func() time.Time

	cursor models.YearMonth
	status ReportStatus
	data   ReportData
}

// NewReportPage returns a page whose cursor starts on the current month.
func NewReportPage(loader *ReportLoader, logger *zap.Logger) *ReportPage {
	now := time.Now
	return &ReportPage{
		loader: loader,
		log:    logger,
		now:    now,
		cursor: models.YearMonthOf(now()),
		status: ReportLoading,
	}
}

// PrevMonth moves the cursor back one month. There is no lower bound.
func (p *ReportPage) PrevMonth() { p.cursor = p.cursor.Prev() }

// NextMonth advances the cursor unless that would cross into a month after
// the current real one, in which case the cursor stays put.
func (p *ReportPage) NextMonth() {
	next := p.cursor.Next()
	if next.After(models.YearMonthOf(p.now())) {
		return
	}
	p.cursor = next
}

// Cursor returns the month the page is showing.
func (p *ReportPage) Cursor() models.YearMonth { return p.cursor }

// Load fetches the cursor month's datasets. The page reports ReportFailed
// if any of the three queries failed, ReportLoaded only when all of them
// arrived.
func (p *ReportPage) Load(ctx context.Context) error {
	p.status = ReportLoading

	data, err := p.loader.Load(ctx, p.cursor)
	if err != nil {
		p.log.Error("carbon report load failed",
			zap.Int("year", p.cursor.Year),
			zap.Int("month", int(p.cursor.Month)),
			zap.Error(err))
		p.status = ReportFailed
		return err
	}

	p.data = data
	p.status = ReportLoaded
	return nil
}

// Status returns the combined load state of the three queries.
func (p *ReportPage) Status() ReportStatus { return p.status }

// Summary returns the month's purchase/saving aggregate.
func (p *ReportPage) Summary() models.MonthlyCarbon { return p.data.Monthly }

// WeeklyReduction returns the weekly chart bars for the loaded month.
func (p *ReportPage) WeeklyReduction() []models.WeeklyReduction {
	return BuildWeeklyReduction(p.data.Weekly)
}

// PurchaseHistory returns the date-grouped purchases for the loaded month.
func (p *ReportPage) PurchaseHistory() []models.PurchaseDay {
	return GroupPurchaseHistory(p.data.Products)
}

// BuildWeeklyReduction maps the fetched weekly buckets onto chart bars
// with ordinal week labels.
func BuildWeeklyReduction(weekly []models.WeeklyCarbon) []models.WeeklyReduction {
	bars := make([]models.WeeklyReduction, 0, len(weekly))
	for _, bucket := range weekly {
		bars = append(bars, models.WeeklyReduction{
			Week:  utils.WeekLabel(bucket.Week),
			Value: bucket.SavedKg,
		})
	}
	return bars
}

// GroupPurchaseHistory groups the flat per-product rows by formatted date.
// The first row seen for a date creates its bucket; later rows with the
// same date append to it, so bucket order and item order both follow the
// input order.
func GroupPurchaseHistory(products []models.ProductCarbon) []models.PurchaseDay {
	var days []models.PurchaseDay
	index := make(map[string]int)

	for _, row := range products {
		date := utils.FormatReportDate(row.Date)
		item := models.PurchaseItem{
			Name:        row.Product,
			Quantity:    row.Quantity,
			CarbonSaved: row.SavedKg,
			Store:       row.Store,
		}
		if i, ok := index[date]; ok {
			days[i].Items = append(days[i].Items, item)
			continue
		}
		index[date] = len(days)
		days = append(days, models.PurchaseDay{Date: date, Items: []models.PurchaseItem{item}})
	}
	return days
}
