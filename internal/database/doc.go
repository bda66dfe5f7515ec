// Package database provides the data access layer for the application.
//
// The layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── animals/         # Animal storage and follow state
//	└── settings/        # Key-value application settings
//
// Each sub-package provides a Repository type with domain-specific
// operations:
//
//	db, err := database.NewDatabase("./pawdopt.db")
//
//	animalsRepo := animals.NewRepository(db.DB)
//	settingsRepo := settings.NewRepository(db.DB)
//
// Repositories satisfy the consumer-defined interfaces of the packages
// that use them (http.AnimalsStore, follow.Store, sync.AnimalStore),
// checked at compile time with:
//
//	var _ SomeInterface = (*Repository)(nil)
package database
