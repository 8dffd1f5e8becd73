package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tmc/langchaingo/llms/openai"

	"pratofit/internal/adapters/out/assistant"
	"pratofit/internal/adapters/out/memory/sessionrepo"
	"pratofit/internal/adapters/out/staticdata"
	"pratofit/internal/adapters/out/viacep"
	"pratofit/internal/adapters/out/whatsapp"
	"pratofit/internal/core/application/usecases/commands"
	"pratofit/internal/core/application/usecases/queries"
	"pratofit/internal/core/domain/model/catalog"
	"pratofit/internal/core/domain/model/checkout"
	"pratofit/internal/core/domain/model/zone"
	"pratofit/internal/core/ports"
)

type CompositionRoot struct {
	config Config

	logger      *slog.Logger
	sessionRepo ports.SessionRepository
	catalog     *catalog.Catalog
	zones       zone.Table
	pickup      checkout.PickupInfo
	lookup      ports.AddressLookup
	links       whatsapp.LinkBuilder
	assistant   ports.ChatAssistant
}

func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cat, err := staticdata.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	zones, err := staticdata.NewZoneTable()
	if err != nil {
		return nil, fmt.Errorf("failed to build zone table: %w", err)
	}

	root := &CompositionRoot{
		config:      config,
		logger:      logger,
		sessionRepo: sessionrepo.NewInMemorySessionRepository(),
		catalog:     cat,
		zones:       zones,
		pickup:      staticdata.PickupPoint(),
		lookup:      viacep.NewClient(config.ViaCEPBaseURL, 10*time.Second),
		links:       whatsapp.NewLinkBuilder(config.WhatsAppPhone),
	}

	// The assistant is optional: without an API key the chat degrades to a
	// static apology instead of refusing to start.
	if config.OpenAIAPIKey != "" {
		model, modelErr := openai.New(
			openai.WithToken(config.OpenAIAPIKey),
			openai.WithModel(config.OpenAIModel),
		)
		if modelErr != nil {
			return nil, fmt.Errorf("failed to build assistant model: %w", modelErr)
		}

		root.assistant, err = assistant.NewLangChainAssistant(model, cat)
		if err != nil {
			return nil, fmt.Errorf("failed to build assistant: %w", err)
		}
	}

	return root, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateStartSessionCommandHandler() commands.StartSessionCommandHandler {
	return commands.NewStartSessionCommandHandler(c.sessionRepo)
}

func (c *CompositionRoot) CreateSelectKitCommandHandler() commands.SelectKitCommandHandler {
	return commands.NewSelectKitCommandHandler(c.sessionRepo, c.catalog)
}

func (c *CompositionRoot) CreateChangeKitCommandHandler() commands.ChangeKitCommandHandler {
	return commands.NewChangeKitCommandHandler(c.sessionRepo)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.sessionRepo, c.catalog)
}

func (c *CompositionRoot) CreateAdjustQuantityCommandHandler() commands.AdjustQuantityCommandHandler {
	return commands.NewAdjustQuantityCommandHandler(c.sessionRepo)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.sessionRepo)
}

func (c *CompositionRoot) CreateLookupPostalCodeCommandHandler() commands.LookupPostalCodeCommandHandler {
	return commands.NewLookupPostalCodeCommandHandler(c.sessionRepo, c.lookup, c.zones, c.logger)
}

func (c *CompositionRoot) CreateSelectNeighborhoodCommandHandler() commands.SelectNeighborhoodCommandHandler {
	return commands.NewSelectNeighborhoodCommandHandler(c.sessionRepo, c.zones)
}

func (c *CompositionRoot) CreateSetFulfillmentModeCommandHandler() commands.SetFulfillmentModeCommandHandler {
	return commands.NewSetFulfillmentModeCommandHandler(c.sessionRepo, c.zones)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.sessionRepo, c.pickup, c.links)
}

func (c *CompositionRoot) CreateAskAssistantCommandHandler() commands.AskAssistantCommandHandler {
	return commands.NewAskAssistantCommandHandler(c.assistant, c.logger)
}

func (c *CompositionRoot) CreateCleanupSessionsCommandHandler() commands.CleanupSessionsCommandHandler {
	return commands.NewCleanupSessionsCommandHandler(c.sessionRepo)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.sessionRepo)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetZonesQueryHandler() queries.GetZonesQueryHandler {
	return queries.NewGetZonesQueryHandler(c.zones, c.pickup)
}
