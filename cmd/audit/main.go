package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"favoritesapi/internal/catalog"
	"favoritesapi/internal/config"
	"favoritesapi/internal/database"
	"favoritesapi/internal/modules/favorite"
	"favoritesapi/internal/repository"
)

// Audits favorites against the external catalog and optionally removes
// rows whose product no longer resolves. Uses the same existence check
// as favorite creation.
func main() {
	deleteInvalid := flag.Bool("delete", false, "remove favorites whose product no longer resolves")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	clientRepo := repository.NewClientRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	catalogClient := catalog.New(cfg.CatalogBaseURL)

	service := favorite.NewService(clientRepo, favoriteRepo, catalogClient)

	log.Println("Auditing favorites against the external catalog...")
	report, err := service.Audit(context.Background(), *deleteInvalid)
	if err != nil {
		log.Fatal("audit failed:", err)
	}

	for _, inv := range report.Invalid {
		log.Printf("invalid favorite: id=%d client_id=%d product_id=%d", inv.ID, inv.ClientID, inv.ProductID)
	}

	log.Printf("Total audited: %d", report.Total)
	log.Printf("Total invalid: %d", len(report.Invalid))
	if *deleteInvalid {
		log.Println("Invalid favorites removed")
	} else if len(report.Invalid) > 0 {
		log.Println("Run with -delete to remove invalid favorites")
	}
}
