package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"estately/internal/config"
	"estately/internal/db"
	"estately/internal/model"
	"estately/internal/repository"
)

var seedCategories = []string{
	"Apartment",
	"Villa",
	"Independent House",
	"Plot",
	"Commercial",
	"Farmhouse",
}

var seedLocations = []model.Location{
	{Name: "Bandra West", City: "Mumbai", State: "Maharashtra"},
	{Name: "Koramangala", City: "Bengaluru", State: "Karnataka"},
	{Name: "Gachibowli", City: "Hyderabad", State: "Telangana"},
	{Name: "Salt Lake", City: "Kolkata", State: "West Bengal"},
	{Name: "Anna Nagar", City: "Chennai", State: "Tamil Nadu"},
	{Name: "Vasant Kunj", City: "Delhi", State: "Delhi"},
}

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	categoryRepo := repository.NewCategoryRepository(gormDB)
	locationRepo := repository.NewLocationRepository(gormDB)

	created, err := seedCategoryTable(ctx, categoryRepo)
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}
	log.Printf("Categories seeded: %d new", created)

	created, err = seedLocationTable(ctx, locationRepo)
	if err != nil {
		log.Fatalf("Failed to seed locations: %v", err)
	}
	log.Printf("Locations seeded: %d new", created)

	log.Println("Seed completed successfully!")
}

// seedCategoryTable creates any reference categories that do not exist yet.
func seedCategoryTable(ctx context.Context, repo repository.CategoryRepository) (int, error) {
	created := 0
	for _, name := range seedCategories {
		_, err := repo.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}
		if err := repo.Create(ctx, &model.Category{Name: name, IsActive: true}); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// seedLocationTable creates any reference locations that do not exist yet,
// matching on name and city.
func seedLocationTable(ctx context.Context, repo repository.LocationRepository) (int, error) {
	existing, err := repo.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, loc := range existing {
		seen[loc.Name+"|"+loc.City] = true
	}

	created := 0
	for _, loc := range seedLocations {
		if seen[loc.Name+"|"+loc.City] {
			continue
		}
		loc := loc
		loc.Country = "India"
		loc.IsActive = true
		if err := repo.Create(ctx, &loc); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
