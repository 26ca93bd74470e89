// Package pages holds the three page controllers of the consumer app:
// the local-food map, the receipt detail view and the carbon report. Each
// controller owns its page state exclusively and talks to the marketplace
// API through the narrow interfaces declared here.
package pages

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sanjijikfarm/models"
)

// Sort filters shown on the shop sheet. Toggling is display-only: it never
// re-fetches or re-orders data here, the list component owns ordering.
const (
	FilterDistance = "거리순"
	FilterRating   = "평점순"
)

// ShopAPI is the slice of the marketplace API the localfood page consumes.
type ShopAPI interface {
	ShopList(ctx context.Context) ([]models.Shop, error)
	SearchShops(ctx context.Context, keyword string) ([]models.Shop, error)
}

// Geocoder resolves a postal address to a coordinate.
type Geocoder interface {
	CoordsByAddress(ctx context.Context, address string) (models.Coordinate, error)
}

// LocalfoodPage drives the map page: keyword search, per-shop geocoding,
// map centering and the shop detail sheet.
type LocalfoodPage struct {
	shops    ShopAPI
	geocoder Geocoder
	log      *zap.Logger

	// geocodeLimit bounds the geocode fan-out. 0 means no bound, which
	// matches dispatching every address at once.
	geocodeLimit int

	input     string
	shopList  []models.Shop
	selected  *models.Shop
	center    models.Coordinate
	filter    string
	sheetOpen bool
}

// NewLocalfoodPage returns a page centered on the default location with
// the distance filter active.
func NewLocalfoodPage(shops ShopAPI, geocoder Geocoder, geocodeLimit int, logger *zap.Logger) *LocalfoodPage {
	return &LocalfoodPage{
		shops:        shops,
		geocoder:     geocoder,
		geocodeLimit: geocodeLimit,
		log:          logger,
		center:       models.DefaultCenter,
		filter:       FilterDistance,
	}
}

// SetInput updates the search input value.
func (p *LocalfoodPage) SetInput(value string) { p.input = value }

// Search runs the search workflow: fetch the shops for the trimmed
// keyword (the full list when it is empty), geocode every address
// concurrently, then publish the raw result list, open the sheet and
// recenter the map on the first shop that geocoded. A fetch failure leaves
// every piece of page state untouched.
//
// A search started while a previous one is still resolving is not
// cancelled; whichever finishes later wins the state it touches.
func (p *LocalfoodPage) Search(ctx context.Context) error {
	keyword := strings.TrimSpace(p.input)

	var (
		results []models.Shop
		err     error
	)
	if keyword == "" {
		results, err = p.shops.ShopList(ctx)
	} else {
		results, err = p.shops.SearchShops(ctx, keyword)
	}
	if err != nil {
		p.log.Error("shop search failed", zap.String("keyword", keyword), zap.Error(err))
		return err
	}

	coords := p.geocodeAll(ctx, results)

	// Geocode failures never hide a shop from the list, they only exclude
	// it from the centering pass below.
	p.shopList = results
	p.sheetOpen = true

	for i := range results {
		if coords[i] != nil {
			p.center = *coords[i]
			break
		}
	}
	return nil
}

// geocodeAll resolves coordinates for every shop in parallel and stamps
// them onto the shops. The returned slice is positionally aligned with
// shops; entries whose address failed to resolve stay nil.
func (p *LocalfoodPage) geocodeAll(ctx context.Context, shops []models.Shop) []*models.Coordinate {
	coords := make([]*models.Coordinate, len(shops))

	eg, egCtx := errgroup.WithContext(ctx)
	if p.geocodeLimit > 0 {
		eg.SetLimit(p.geocodeLimit)
	}
	for i := range shops {
		i := i
		eg.Go(func() error {
			coord, err := p.geocoder.CoordsByAddress(egCtx, shops[i].Address)
			if err != nil {
				p.log.Warn("address geocode failed",
					zap.String("address", shops[i].Address), zap.Error(err))
				return nil
			}
			coords[i] = &coord
			return nil
		})
	}
	_ = eg.Wait() // workers swallow their own errors

	for i := range shops {
		shops[i].LatLng = coords[i]
	}
	return coords
}

// ToggleFilter flips between distance and rating order.
func (p *LocalfoodPage) ToggleFilter() {
	if p.filter == FilterDistance {
		p.filter = FilterRating
	} else {
		p.filter = FilterDistance
	}
}

// MarkerClick selects the clicked shop and opens the detail sheet.
func (p *LocalfoodPage) MarkerClick(shop models.Shop) {
	p.selected = &shop
	p.sheetOpen = true
}

// FindNearby is a placeholder for the nearby-store lookup. The upstream
// contract for it is not settled, so it deliberately performs no state
// change and no network call.
// TODO: call the nearby-shops endpoint once it exists upstream.
func (p *LocalfoodPage) FindNearby() {}

// CloseSheet closes the detail sheet and drops the marker selection.
func (p *LocalfoodPage) CloseSheet() {
	p.sheetOpen = false
	p.selected = nil
}

// VisibleShops returns what the detail sheet shows: only the selected shop
// while a marker selection is active, otherwise the full result list.
func (p *LocalfoodPage) VisibleShops() []models.Shop {
	if p.selected != nil {
		return []models.Shop{*p.selected}
	}
	return p.shopList
}

// Center returns the current map center.
func (p *LocalfoodPage) Center() models.Coordinate { return p.center }

// Filter returns the active sort filter.
func (p *LocalfoodPage) Filter() string { return p.filter }

// SheetOpen reports whether the detail sheet is open.
func (p *LocalfoodPage) SheetOpen() bool { return p.sheetOpen }
