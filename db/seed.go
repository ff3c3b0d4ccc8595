package db

import (
	"errors"
	"log"
	"time"

	"karukotha/models"

	"gorm.io/gorm"
)

// Seed initializes the singleton settings row and, when the catalog is
// empty, loads the sample storefront data. Safe to run on every startup.
func Seed(gdb *gorm.DB) error {
	if err := seedSettings(gdb); err != nil {
		return err
	}
	return seedCatalog(gdb)
}

func seedSettings(gdb *gorm.DB) error {
	var settings models.Settings
	err := gdb.First(&settings).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	defaults := models.Settings{
		StoreName:             "karukotha",
		StoreDescription:      "Timeless Elegance from Bangladesh",
		Currency:              "BDT",
		TaxRate:               0.0,
		ShippingFee:           100.0,
		FreeShippingThreshold: 5000.0,
		ContactEmail:          "contact@karukotha.com",
	}
	return gdb.Create(&defaults).Error
}

func seedCatalog(gdb *gorm.DB) error {
	var existing models.Product
	err := gdb.First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		categories := map[string]*models.Category{
			"Lighting":  {Name: "Lighting", Slug: "lighting", Description: "Lamps and ambient lighting"},
			"Furniture": {Name: "Furniture", Slug: "furniture", Description: "Handcrafted wooden furniture"},
			"Decor":     {Name: "Decor", Slug: "decor", Description: "Traditional home decor"},
		}
		for _, category := range categories {
			if err := tx.Create(category).Error; err != nil {
				return err
			}
		}

		products := []models.Product{
			{
				Name:        "Vintage Brass Lamp",
				Description: "Exquisite vintage brass lamp with intricate engravings and traditional design. Perfect centerpiece for any heritage home, featuring handcrafted details and warm ambient lighting.",
				Price:       8500,
				Stock:       15,
				Images: []string{
					"https://images.unsplash.com/photo-1513506003901-1e6a229e2d15?w=500",
					"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500",
				},
				SKU:        "LIT-BRL-001",
				Brand:      "Heritage Crafts",
				Tags:       []string{"brass", "lamp", "vintage", "lighting", "bestseller"},
				InStock:    true,
				Categories: []models.Category{*categories["Lighting"]},
			},
			{
				Name:        "Antique Wooden Cabinet",
				Description: "Stunning antique wooden cabinet with hand-carved details and traditional Bengali motifs. Features multiple compartments and brass hardware. A true statement piece for collectors.",
				Price:       45000,
				Stock:       5,
				Images: []string{
					"https://images.unsplash.com/photo-1595428774223-ef52624120d2?w=500",
					"https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=500",
				},
				SKU:        "FUR-CAB-002",
				Brand:      "Antique Collection",
				Tags:       []string{"furniture", "cabinet", "antique", "wood", "new arrival"},
				InStock:    true,
				Categories: []models.Category{*categories["Furniture"]},
			},
			{
				Name:        "Traditional Brass Pottery",
				Description: "Authentic traditional brass pottery with intricate designs. Handcrafted by skilled artisans using centuries-old techniques. Perfect for displaying flowers or as standalone decor.",
				Price:       3200,
				Stock:       25,
				Images: []string{
					"https://images.unsplash.com/photo-1610701596007-11502861dcfa?w=500",
					"https://images.unsplash.com/photo-1578500494198-246f612d3b3d?w=500",
				},
				SKU:        "DEC-POT-003",
				Brand:      "Brass Artisans",
				Tags:       []string{"brass", "pottery", "decor", "handcrafted", "traditional"},
				InStock:    true,
				Categories: []models.Category{*categories["Decor"]},
			},
			{
				Name:        "Vintage Photo Frame",
				Description: "Elegant vintage photo frame with ornate brass detailing and glass protection. Holds standard photo sizes and adds a touch of nostalgia to any space.",
				Price:       2800,
				Stock:       35,
				Images: []string{
					"https://images.unsplash.com/photo-1582139329536-e7284fece509?w=500",
					"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=500",
				},
				SKU:        "DEC-FRM-004",
				Brand:      "Heritage Frames",
				Tags:       []string{"frame", "vintage", "photo", "decor", "brass"},
				InStock:    true,
				Categories: []models.Category{*categories["Decor"]},
			},
			{
				Name:        "Antique Mirror",
				Description: "Magnificent antique mirror with hand-carved wooden frame featuring traditional Bengali patterns. Large size perfect for entryways or bedrooms. Limited edition piece.",
				Price:       15000,
				Stock:       8,
				Images: []string{
					"https://images.unsplash.com/photo-1618220179428-22790b461013?w=500",
					"https://images.unsplash.com/photo-1513519245088-0e12902e35ca?w=500",
				},
				SKU:        "DEC-MIR-005",
				Brand:      "Antique Collection",
				Tags:       []string{"mirror", "antique", "decor", "wood", "limited"},
				InStock:    true,
				Categories: []models.Category{*categories["Decor"]},
			},
			{
				Name:        "Classic Wall Clock",
				Description: "Classic wall clock with brass frame and Roman numerals. Features silent quartz movement and vintage design. Perfect blend of functionality and heritage aesthetics.",
				Price:       6500,
				Stock:       20,
				Images: []string{
					"https://images.unsplash.com/photo-1563861826100-9cb868fdbe1c?w=500",
					"https://images.unsplash.com/photo-1509048191080-d2984bad6ae5?w=500",
				},
				SKU:        "DEC-CLK-006",
				Brand:      "Time Heritage",
				Tags:       []string{"clock", "wall clock", "brass", "classic", "decor"},
				InStock:    true,
				Categories: []models.Category{*categories["Decor"]},
			},
		}
		for i := range products {
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
		}
		log.Printf("Added %d initial products to database", len(products))

		reviews := []models.Review{
			{
				ProductID: products[0].ID,
				Author:    "Ahmed Hassan",
				Rating:    5,
				Comment:   "Absolutely stunning piece! The craftsmanship is incredible. Perfect addition to my living room.",
				Verified:  true,
				CreatedAt: time.Date(2025, 12, 28, 10, 30, 0, 0, time.UTC),
			},
			{
				ProductID: products[0].ID,
				Author:    "Nadia Rahman",
				Rating:    5,
				Comment:   "Beautiful antique lamp with authentic Bengali design. Fast delivery and well-packaged.",
				Verified:  true,
				CreatedAt: time.Date(2025, 12, 15, 14, 20, 0, 0, time.UTC),
			},
		}
		for i := range reviews {
			if err := tx.Create(&reviews[i]).Error; err != nil {
				return err
			}
		}
		log.Printf("Added %d sample reviews to database", len(reviews))
		return nil
	})
}
