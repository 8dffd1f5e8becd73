package main

import (
	"fmt"
	nethttp "net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"pratofit/cmd"
	"pratofit/internal/adapters/in/http"
	"pratofit/internal/adapters/out/viacep"
	"pratofit/internal/jobs"
)

const defaultSessionTTL = 30 * time.Minute

func main() {
	configs := getConfigs()

	root, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := jobs.NewJobManager(
		root.CreateCleanupSessionsCommandHandler(),
		configs.SessionTTL,
		root.Logger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment")
	}

	config := cmd.Config{
		HTTPPort:      envOrDefault("HTTP_PORT", "8080"),
		WhatsAppPhone: os.Getenv("WHATSAPP_PHONE"),
		ViaCEPBaseURL: envOrDefault("VIACEP_BASE_URL", viacep.DefaultBaseURL),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		SessionTTL:    envDurationOrDefault("SESSION_TTL", defaultSessionTTL),
	}
	return config
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDurationOrDefault(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return parsed
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := http.NewServer(
		root.CreateStartSessionCommandHandler(),
		root.CreateSelectKitCommandHandler(),
		root.CreateChangeKitCommandHandler(),
		root.CreateAddItemCommandHandler(),
		root.CreateAdjustQuantityCommandHandler(),
		root.CreateClearCartCommandHandler(),
		root.CreateLookupPostalCodeCommandHandler(),
		root.CreateSelectNeighborhoodCommandHandler(),
		root.CreateSetFulfillmentModeCommandHandler(),
		root.CreateSubmitOrderCommandHandler(),
		root.CreateAskAssistantCommandHandler(),
		root.CreateGetSessionQueryHandler(),
		root.CreateGetCatalogQueryHandler(),
		root.CreateGetZonesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
