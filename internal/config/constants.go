package config

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./pawdopt.db"

	// DefaultAdoptAPetBaseURL is the staging pet-search endpoint
	DefaultAdoptAPetBaseURL = "https://api-staging.adoptapet.com/search/pet_search"

	// DefaultMockFeedURL is the static fallback feed used when the primary API is unavailable
	DefaultMockFeedURL = "https://carlos-aldeias-estg.github.io/pdm2-2025-mock-api/api/pets.json"
)
