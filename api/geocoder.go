package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"sanjijikfarm/models"
)

const kakaoAddressURL = "https://dapi.kakao.com/v2/local/search/address.json"

// KakaoGeocoder resolves postal addresses to coordinates through the Kakao
// local REST API.
type KakaoGeocoder struct {
	restKey string
	baseURL string
	http    *http.Client
}

// NewKakaoGeocoder returns a geocoder authenticated with a Kakao REST key.
func NewKakaoGeocoder(restKey string) *KakaoGeocoder {
	return &KakaoGeocoder{
		restKey: restKey,
		baseURL: kakaoAddressURL,
		http:    &http.Client{},
	}
}

// Kakao encodes coordinates as strings: x is longitude, y is latitude.
type kakaoAddressResponse struct {
	Documents []kakaoDocument `json:"documents"`
}

type kakaoDocument struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// CoordsByAddress geocodes a single address. It fails when the address is
// unknown to Kakao or the response cannot be parsed.
func (g *KakaoGeocoder) CoordsByAddress(ctx context.Context, address string) (models.Coordinate, error) {
	u := g.baseURL + "?" + url.Values{"query": {address}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	req.Header.Set("Authorization", "KakaoAK "+g.restKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinate{}, fmt.Errorf("geocode %q: unexpected status %d", address, resp.StatusCode)
	}

	var body kakaoAddressResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Coordinate{}, fmt.Errorf("geocode %q: decode response: %w", address, err)
	}
	if len(body.Documents) == 0 {
		return models.Coordinate{}, fmt.Errorf("geocode %q: no matching address", address)
	}

	doc := body.Documents[0]
	lng, err := strconv.ParseFloat(doc.X, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("geocode %q: bad longitude %q", address, doc.X)
	}
	lat, err := strconv.ParseFloat(doc.Y, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("geocode %q: bad latitude %q", address, doc.Y)
	}

	return models.Coordinate{Lat: lat, Lng: lng}, nil
}
