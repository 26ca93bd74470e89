package main

import (
	"log"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"sanjijikfarm/api"
	"sanjijikfarm/config"
	"sanjijikfarm/handlers"
	"sanjijikfarm/pages"
	"sanjijikfarm/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	farmAPIURL := os.Getenv("FARM_API_URL")
	if farmAPIURL == "" {
		log.Fatal("FARM_API_URL is not set")
	}

	kakaoKey := os.Getenv("KAKAO_REST_KEY")
	if kakaoKey == "" {
		log.Fatal("KAKAO_REST_KEY is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	geocodeLimit := 0
	if v := os.Getenv("GEOCODE_CONCURRENCY"); v != "" {
		geocodeLimit, err = strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid GEOCODE_CONCURRENCY: %v", err)
		}
	}

	// Set up the application configuration
	config.AppConfig = config.Config{
		JWTSecret:          jwtSecret,
		FarmAPIBaseURL:     farmAPIURL,
		KakaoRESTKey:       kakaoKey,
		GeocodeConcurrency: geocodeLimit,
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	farmClient := api.NewClient(farmAPIURL, logger)
	geocoder := api.NewKakaoGeocoder(kakaoKey)

	handlers.Setup(handlers.Deps{
		Shops:        farmClient,
		Geocoder:     geocoder,
		Receipts:     farmClient,
		Reports:      pages.NewReportLoader(farmClient),
		GeocodeLimit: geocodeLimit,
		Log:          logger,
	})

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server
	log.Fatal(app.Listen(":" + port))
}
