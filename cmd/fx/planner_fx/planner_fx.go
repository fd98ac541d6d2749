package planner_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

var Module = fx.Provide(
	provideGenerationClient, providePlannerService)

// provideGenerationClient builds the model client from environment config.
// GENERATION_PROVIDER selects "gemini" (default) or "openai"; the matching
// API key env var must be set.
func provideGenerationClient() utils.GenerationClientInterface {
	provider := os.Getenv("GENERATION_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	client, err := utils.NewGenerationClient(provider, apiKey, os.Getenv("GENERATION_MODEL"))
	if err != nil {
		log.Fatalf("Failed to initialize generation client: %v", err)
	}
	return client
}

func providePlannerService(client utils.GenerationClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(client)
}
