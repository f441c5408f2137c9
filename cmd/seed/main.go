package main

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const (
	adminEmail    = "admin@storefront.local"
	adminPassword = "admin-change-me"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Item{}, &model.CartItem{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)
	ctx := context.Background()

	admin, err := seedAdmin(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	created, err := seedItems(ctx, itemRepo, admin.ID)
	if err != nil {
		log.Fatalf("Failed to seed items: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Admin user: %s (id=%d)", admin.Email, admin.ID)
	log.Printf("  - Demo items created: %d", created)
}

// seedAdmin creates the admin user if it does not exist yet.
func seedAdmin(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, adminEmail)
	if err == nil {
		log.Println("Admin user already exists, skipping")
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}
	admin := &model.User{
		Name:         "Store Admin",
		Email:        adminEmail,
		PasswordHash: hash,
		Permissions:  model.Permissions{model.PermissionUser, model.PermissionAdmin},
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// seedItems inserts a handful of demo items owned by the admin, skipping the
// whole step when items already exist.
func seedItems(ctx context.Context, repo repository.ItemRepository, ownerID uint) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		log.Printf("Found %d existing items, skipping item seed", len(existing))
		return 0, nil
	}

	demo := []model.Item{
		{Title: "Yeti Hondo Cooler", Description: "Keeps drinks cold for days", Price: decimal.NewFromInt(349)},
		{Title: "Dogs Socks", Description: "Socks with dogs on them", Price: decimal.NewFromFloat(12.50)},
		{Title: "KITH Hoodie", Description: "Oversized fit, heavyweight fleece", Price: decimal.NewFromInt(150)},
	}

	created := 0
	for i := range demo {
		demo[i].UserID = ownerID
		if err := repo.Create(ctx, &demo[i]); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
