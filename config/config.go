package config

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	JWTSecret      string
	FarmAPIBaseURL string
	KakaoRESTKey   string

	// GeocodeConcurrency bounds the parallel geocode requests made per
	// search. 0 dispatches every address at once.
	GeocodeConcurrency int
}

// AppConfig holds the application-wide configuration
var AppConfig Config
