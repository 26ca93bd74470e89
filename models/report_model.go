package models

import (
	"fmt"
	"time"
)

// YearMonth is the report page's month cursor.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// YearMonthOf returns the calendar month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Prev returns the month before ym.
func (ym YearMonth) Prev() YearMonth { return ym.shift(-1) }

// Next returns the month after ym.
func (ym YearMonth) Next() YearMonth { return ym.shift(1) }

func (ym YearMonth) shift(months int) YearMonth {
	t := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// After reports whether ym falls in a strictly later month than other.
func (ym YearMonth) After(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year > other.Year
	}
	return ym.Month > other.Month
}

// String renders the cursor as "YYYY-MM". Used as the cache key suffix.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// WeeklyCarbon is one week's saved-CO2 bucket as fetched from the API.
type WeeklyCarbon struct {
	Week    int     `json:"week"`
	SavedKg float64 `json:"savedKg"`
}

// MonthlyCarbon aggregates one month's purchases.
type MonthlyCarbon struct {
	PurchaseCount int     `json:"purchaseCount"`
	TotalSavedKg  float64 `json:"totalSavedKg"`
}

// ProductCarbon is one purchased product's saved-CO2 row.
type ProductCarbon struct {
	Date     string  `json:"date"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	SavedKg  float64 `json:"savedKg"`
	Store    string  `json:"store"`
}

// --- Derived views ---

// WeeklyReduction is one bar of the weekly reduction chart.
type WeeklyReduction struct {
	Week  string  `json:"week"`
	Value float64 `json:"value"`
}

// PurchaseItem is one purchase inside a day's history entry.
type PurchaseItem struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	CarbonSaved float64 `json:"carbonSaved"`
	Store       string  `json:"store"`
}

// PurchaseDay groups the purchases made on one formatted date.
type PurchaseDay struct {
	Date  string         `json:"date"`
	Items []PurchaseItem `json:"items"`
}
