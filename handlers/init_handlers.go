package handlers

import (
	"go.uber.org/zap"

	"sanjijikfarm/pages"
)

// Deps are the shared services the handlers close over. Setup wires them
// once at startup; tests wire fakes the same way.
type Deps struct {
	Shops        pages.ShopAPI
	Geocoder     pages.Geocoder
	Receipts     pages.ReceiptAPI
	Reports      *pages.ReportLoader
	GeocodeLimit int
	Log          *zap.Logger
}

var deps Deps

// Setup stores the handler dependencies.
func Setup(d Deps) {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	deps = d
}
