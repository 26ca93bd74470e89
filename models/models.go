package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// --- Core Models ---

// Coordinate is a latitude/longitude pair, used for shop positions and
// for the map center.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultCenter is the map center before any search has run (Jeju).
var DefaultCenter = Coordinate{Lat: 33.450701, Lng: 126.570667}

// Shop represents a local-food store returned by the marketplace API.
type Shop struct {
	ID       int64   `json:"shopId"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Rating   float64 `json:"rating"`
	Distance float64 `json:"distance"`

	// LatLng is filled in after geocoding. It stays nil for shops whose
	// address could not be resolved; such shops remain in the list but are
	// skipped by the map-centering logic.
	LatLng *Coordinate `json:"latlng,omitempty"`
}

// Review is a product review written from a receipt line item.
type Review struct {
	ReviewID  int64  `json:"reviewId"`
	ProductID int64  `json:"productId"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	ImageURL  string `json:"imageUrl"`
}

// ReceiptItem is one line of a receipt. The review fields are populated by
// the client-side join against the review list; when no review matches the
// product they hold explicit nulls (or the empty string for the text).
type ReceiptItem struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`

	ReviewID   *int64  `json:"reviewId"`
	Rating     *int    `json:"rating"`
	ReviewText string  `json:"reviewText"`
	ImageURL   *string `json:"imageUrl"`
}

// Receipt is one purchase receipt with its ordered line items.
type Receipt struct {
	Date        string        `json:"date"`
	StoreName   string        `json:"storeName"`
	TotalAmount int64         `json:"totalAmount"`
	ItemList    []ReceiptItem `json:"itemList"`
}
