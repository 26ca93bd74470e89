package pages

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sanjijikfarm/models"
)

type fakeShopAPI struct {
	shops []models.Shop
	err   error

	listCalls   int
	searchCalls int
	lastKeyword string
}

func (f *fakeShopAPI) ShopList(ctx context.Context) ([]models.Shop, error) {
	f.listCalls++
	return f.shops, f.err
}

func (f *fakeShopAPI) SearchShops(ctx context.Context, keyword string) ([]models.Shop, error) {
	f.searchCalls++
	f.lastKeyword = keyword
	return f.shops, f.err
}

// fakeGeocoder resolves coordinates from a fixed address table. Addresses
// missing from the table fail, and per-address delays let tests force a
// settle order different from the submission order.
type fakeGeocoder struct {
	coords map[string]models.Coordinate
	delays map[string]time.Duration

	mu    sync.Mutex
	calls int
}

func (f *fakeGeocoder) CoordsByAddress(ctx context.Context, address string) (models.Coordinate, error) {
	if d := f.delays[address]; d > 0 {
		time.Sleep(d)
	}
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	coord, ok := f.coords[address]
	if !ok {
		return models.Coordinate{}, errors.New("no matching address")
	}
	return coord, nil
}

func (f *fakeGeocoder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestPage(shops *fakeShopAPI, geo *fakeGeocoder) *LocalfoodPage {
	return NewLocalfoodPage(shops, geo, 0, zap.NewNop())
}

func TestSearchEmptyInputFetchesFullList(t *testing.T) {
	shops := &fakeShopAPI{}
	page := newTestPage(shops, &fakeGeocoder{})

	page.SetInput("   ")
	require.NoError(t, page.Search(context.Background()))

	assert.Equal(t, 1, shops.listCalls)
	assert.Equal(t, 0, shops.searchCalls)
}

func TestSearchTrimsKeyword(t *testing.T) {
	shops := &fakeShopAPI{}
	page := newTestPage(shops, &fakeGeocoder{})

	page.SetInput("  한라봉  ")
	require.NoError(t, page.Search(context.Background()))

	assert.Equal(t, 0, shops.listCalls)
	assert.Equal(t, 1, shops.searchCalls)
	assert.Equal(t, "한라봉", shops.lastKeyword)
}

func TestSearchFetchFailureLeavesStateUnchanged(t *testing.T) {
	shops := &fakeShopAPI{err: errors.New("upstream down")}
	geo := &fakeGeocoder{}
	page := newTestPage(shops, geo)

	page.SetInput("감귤")
	err := page.Search(context.Background())

	require.Error(t, err)
	assert.Empty(t, page.VisibleShops())
	assert.False(t, page.SheetOpen())
	assert.Equal(t, models.DefaultCenter, page.Center())
	assert.Equal(t, 0, geo.callCount())
}

func TestSearchCentersOnFirstGeocodedInResultOrder(t *testing.T) {
	shopA := models.Shop{ID: 1, Name: "A", Address: "addr-a"}
	shopB := models.Shop{ID: 2, Name: "B", Address: "addr-b"}
	shopC := models.Shop{ID: 3, Name: "C", Address: "addr-c"}
	coordB := models.Coordinate{Lat: 33.1, Lng: 126.1}
	coordC := models.Coordinate{Lat: 34.2, Lng: 127.2}

	shops := &fakeShopAPI{shops: []models.Shop{shopA, shopB, shopC}}
	geo := &fakeGeocoder{
		// addr-a never resolves; addr-b resolves last even though it was
		// submitted before addr-c.
		coords: map[string]models.Coordinate{"addr-b": coordB, "addr-c": coordC},
		delays: map[string]time.Duration{"addr-b": 30 * time.Millisecond},
	}
	page := newTestPage(shops, geo)

	require.NoError(t, page.Search(context.Background()))

	// Center follows result order, not settle order.
	assert.Equal(t, coordB, page.Center())

	// Geocode failure hides nothing from the list.
	visible := page.VisibleShops()
	require.Len(t, visible, 3)
	assert.Nil(t, visible[0].LatLng)
	require.NotNil(t, visible[1].LatLng)
	assert.Equal(t, coordB, *visible[1].LatLng)
	assert.True(t, page.SheetOpen())
}

func TestSearchNoGeocodeSuccessKeepsCenter(t *testing.T) {
	shops := &fakeShopAPI{shops: []models.Shop{
		{ID: 1, Address: "addr-a"},
		{ID: 2, Address: "addr-b"},
	}}
	page := newTestPage(shops, &fakeGeocoder{})

	require.NoError(t, page.Search(context.Background()))

	assert.Equal(t, models.DefaultCenter, page.Center())
	assert.Len(t, page.VisibleShops(), 2)
	assert.True(t, page.SheetOpen())
}

func TestSearchEmptyResultStillOpensSheet(t *testing.T) {
	page := newTestPage(&fakeShopAPI{}, &fakeGeocoder{})

	require.NoError(t, page.Search(context.Background()))

	assert.True(t, page.SheetOpen())
	assert.Empty(t, page.VisibleShops())
}

func TestMarkerClickShowsOnlySelectedShop(t *testing.T) {
	shops := &fakeShopAPI{shops: []models.Shop{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}}
	page := newTestPage(shops, &fakeGeocoder{})
	require.NoError(t, page.Search(context.Background()))

	page.MarkerClick(shops.shops[1])

	visible := page.VisibleShops()
	require.Len(t, visible, 1)
	assert.Equal(t, int64(2), visible[0].ID)
	assert.True(t, page.SheetOpen())

	page.CloseSheet()
	assert.False(t, page.SheetOpen())
	assert.Len(t, page.VisibleShops(), 2)
}

func TestToggleFilterFlips(t *testing.T) {
	page := newTestPage(&fakeShopAPI{}, &fakeGeocoder{})

	assert.Equal(t, FilterDistance, page.Filter())
	page.ToggleFilter()
	assert.Equal(t, FilterRating, page.Filter())
	page.ToggleFilter()
	assert.Equal(t, FilterDistance, page.Filter())
}

func TestFindNearbyIsNoOp(t *testing.T) {
	shops := &fakeShopAPI{}
	geo := &fakeGeocoder{}
	page := newTestPage(shops, geo)

	page.FindNearby()

	assert.Equal(t, 0, shops.listCalls)
	assert.Equal(t, 0, shops.searchCalls)
	assert.Equal(t, 0, geo.callCount())
	assert.False(t, page.SheetOpen())
	assert.Equal(t, models.DefaultCenter, page.Center())
}

func TestSearchHonorsGeocodeLimit(t *testing.T) {
	addresses := map[string]models.Coordinate{}
	shopList := make([]models.Shop, 8)
	for i := range shopList {
		addr := string(rune('a' + i))
		shopList[i] = models.Shop{ID: int64(i), Address: addr}
		addresses[addr] = models.Coordinate{Lat: float64(i)}
	}
	shops := &fakeShopAPI{shops: shopList}
	geo := &fakeGeocoder{coords: addresses}
	page := NewLocalfoodPage(shops, geo, 2, zap.NewNop())

	require.NoError(t, page.Search(context.Background()))

	assert.Equal(t, len(shopList), geo.callCount())
	assert.Equal(t, models.Coordinate{Lat: 0}, page.Center())
}
