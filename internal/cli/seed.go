package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mrlokans/pawdopt/internal/config"
	"github.com/mrlokans/pawdopt/internal/database"
	"github.com/mrlokans/pawdopt/internal/database/animals"
	"github.com/mrlokans/pawdopt/internal/entities"
)

// SeedCommand loads a fixed set of sample animals into the local database,
// for development without network access to the remote sources.
type SeedCommand struct {
	DatabasePath string
	Reset        bool
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.BoolVar(&cmd.Reset, "reset", false, "Delete existing animals before seeding")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Populate the local database with sample adoptable animals.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	fmt.Println("Seed Sample Animals")
	fmt.Println("===================")

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	fmt.Printf("Database: %s\n", cmd.DatabasePath)

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := animals.NewRepository(db.DB)

	if cmd.Reset {
		fmt.Println("Deleting existing animals...")
		if err := repo.DeleteAll(); err != nil {
			return fmt.Errorf("failed to delete existing animals: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	inserted, updated, err := repo.UpsertBatch(ctx, sampleAnimals())
	if err != nil {
		return fmt.Errorf("failed to seed animals: %w", err)
	}

	fmt.Printf("\nSeeded %d new animals (%d already present and updated)\n", inserted, updated)
	fmt.Println("Seeding complete!")
	return nil
}

func sampleAnimals() []entities.Animal {
	now := time.Now()
	samples := []entities.Animal{
		{ExternalID: "seed-1", Name: "Max", Species: "dog", PrimaryBreed: "Labrador", Sex: "m", Age: "adult", Size: "large", City: "Lisboa", ImageURL: "https://place.dog/400/300"},
		{ExternalID: "seed-2", Name: "Luna", Species: "cat", PrimaryBreed: "Persian", Sex: "f", Age: "young", Size: "small", City: "Porto", ImageURL: "https://placecats.com/400/300"},
		{ExternalID: "seed-3", Name: "Buddy", Species: "dog", PrimaryBreed: "Poodle", Sex: "m", Age: "young", Size: "medium", City: "Coimbra", ImageURL: "https://place.dog/401/300"},
		{ExternalID: "seed-4", Name: "Mia", Species: "cat", PrimaryBreed: "Siamese", Sex: "f", Age: "adult", Size: "small", City: "Braga", ImageURL: "https://placecats.com/401/300"},
		{ExternalID: "seed-5", Name: "Rocky", Species: "dog", PrimaryBreed: "Bulldog", Sex: "m", Age: "senior", Size: "medium", City: "Faro", ImageURL: "https://place.dog/402/300"},
		{ExternalID: "seed-6", Name: "Whiskers", Species: "cat", PrimaryBreed: "Maine Coon", Sex: "m", Age: "adult", Size: "medium", City: "Setúbal", ImageURL: "https://placecats.com/402/300"},
		{ExternalID: "seed-7", Name: "Bella", Species: "dog", PrimaryBreed: "Golden Retriever", Sex: "f", Age: "adult", Size: "large", City: "Aveiro", ImageURL: "https://place.dog/403/300"},
		{ExternalID: "seed-8", Name: "Oliver", Species: "cat", PrimaryBreed: "British Shorthair", Sex: "m", Age: "young", Size: "small", City: "Évora", ImageURL: "https://placecats.com/403/300"},
		{ExternalID: "seed-9", Name: "Charlie", Species: "dog", PrimaryBreed: "Beagle", Sex: "m", Age: "young", Size: "medium", City: "Viseu", ImageURL: "https://place.dog/404/300"},
		{ExternalID: "seed-10", Name: "Nala", Species: "cat", PrimaryBreed: "Ragdoll", Sex: "f", Age: "adult", Size: "small", City: "Leiria", ImageURL: "https://placecats.com/404/300"},
		{ExternalID: "seed-11", Name: "Thor", Species: "dog", PrimaryBreed: "German Shepherd", Sex: "m", Age: "adult", Size: "large", City: "Santarém", ImageURL: "https://place.dog/405/300"},
		{ExternalID: "seed-12", Name: "Chloe", Species: "rabbit", PrimaryBreed: "Holland Lop", Sex: "f", Age: "young", Size: "small", City: "Funchal", ImageURL: "https://placecats.com/405/300"},
	}
	for i := range samples {
		samples[i].LastModified = now
	}
	return samples
}
