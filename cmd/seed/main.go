package main

import (
	"fmt"

	"github.com/freshcart/freshcart/internal/config"
	"github.com/freshcart/freshcart/internal/logger"
	"github.com/freshcart/freshcart/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 初始化默认管理员
	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Slug: "fruits", Name: "Fresh Fruits", Icon: "https://images.unsplash.com/photo-1619566636858-adf3ef46400b?w=200", SortOrder: 500},
		{Slug: "vegetables", Name: "Vegetables", Icon: "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=200", SortOrder: 490},
		{Slug: "dairy", Name: "Dairy & Eggs", Icon: "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=200", SortOrder: 480},
		{Slug: "bakery", Name: "Bakery", Icon: "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=200", SortOrder: 470},
		{Slug: "beverages", Name: "Beverages", Icon: "https://images.unsplash.com/photo-1544145945-f90425340c7e?w=200", SortOrder: 460},
		{Slug: "snacks", Name: "Snacks", Icon: "https://images.unsplash.com/photo-1599490659213-e2b9527bd087?w=200", SortOrder: 450},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 添加商品
	products := []models.Product{
		{
			Name:        "Organic Bananas 1kg",
			Description: "Sweet organic bananas, ripened naturally. Perfect for smoothies and snacking.",
			Category:    "fruits",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(2.99)),
			ImageURL:    "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=800",
			Rating:      4.6,
			ReviewCount: 128,
			InStock:     true,
			SortOrder:   900,
		},
		{
			Name:          "Honeycrisp Apples 1kg",
			Description:   "Crisp and juicy apples with the perfect balance of sweet and tart.",
			Category:      "fruits",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(4.49)),
			OriginalPrice: moneyPtr(5.49),
			ImageURL:      "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=800",
			Rating:        4.8,
			ReviewCount:   214,
			InStock:       true,
			SortOrder:     890,
		},
		{
			Name:        "Baby Spinach 200g",
			Description: "Tender baby spinach leaves, washed and ready to eat.",
			Category:    "vegetables",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(3.29)),
			ImageURL:    "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=800",
			Rating:      4.5,
			ReviewCount: 86,
			InStock:     true,
			SortOrder:   880,
		},
		{
			Name:          "Cherry Tomatoes 500g",
			Description:   "Sweet cherry tomatoes on the vine, great for salads.",
			Category:      "vegetables",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(3.99)),
			OriginalPrice: moneyPtr(4.79),
			ImageURL:      "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?w=800",
			Rating:        4.7,
			ReviewCount:   152,
			InStock:       true,
			SortOrder:     870,
		},
		{
			Name:        "Whole Milk 2L",
			Description: "Fresh whole milk from grass-fed cows.",
			Category:    "dairy",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(3.49)),
			ImageURL:    "https://images.unsplash.com/photo-1563636619-e9143da7973b?w=800",
			Rating:      4.4,
			ReviewCount: 310,
			InStock:     true,
			SortOrder:   860,
		},
		{
			Name:        "Free Range Eggs 12pk",
			Description: "Large free range eggs from certified farms.",
			Category:    "dairy",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(5.99)),
			ImageURL:    "https://images.unsplash.com/photo-1582722872445-44dc5f7e3c8f?w=800",
			Rating:      4.9,
			ReviewCount: 420,
			InStock:     true,
			SortOrder:   850,
		},
		{
			Name:        "Brown Bread 400g",
			Description: "Wholemeal brown bread, baked fresh daily.",
			Category:    "bakery",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(2.49)),
			ImageURL:    "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=800",
			Rating:      4.3,
			ReviewCount: 97,
			InStock:     true,
			SortOrder:   840,
		},
		{
			Name:          "Butter Croissants 4pk",
			Description:   "Flaky all-butter croissants, baked in store.",
			Category:      "bakery",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(4.99)),
			OriginalPrice: moneyPtr(5.99),
			ImageURL:      "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=800",
			Rating:        4.8,
			ReviewCount:   188,
			InStock:       true,
			SortOrder:     830,
		},
		{
			Name:        "Fresh Orange Juice 1L",
			Description: "100% squeezed orange juice, no added sugar.",
			Category:    "beverages",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(4.29)),
			ImageURL:    "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=800",
			Rating:      4.6,
			ReviewCount: 143,
			InStock:     true,
			SortOrder:   820,
		},
		{
			Name:        "Sparkling Water 6x330ml",
			Description: "Naturally carbonated spring water.",
			Category:    "beverages",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(3.79)),
			ImageURL:    "https://images.unsplash.com/photo-1523362628745-0c100150b504?w=800",
			Rating:      4.2,
			ReviewCount: 64,
			InStock:     false,
			SortOrder:   810,
		},
		{
			Name:        "Classic Hummus 250g",
			Description: "Creamy chickpea hummus with tahini and olive oil.",
			Category:    "snacks",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(2.99)),
			ImageURL:    "https://images.unsplash.com/photo-1577805947697-89e18249d767?w=800",
			Rating:      4.7,
			ReviewCount: 231,
			InStock:     true,
			SortOrder:   800,
		},
		{
			Name:        "Salted Mixed Nuts 300g",
			Description: "Roasted and salted almonds, cashews and peanuts.",
			Category:    "snacks",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(6.49)),
			ImageURL:    "https://images.unsplash.com/photo-1599599810769-bcde5a160d32?w=800",
			Rating:      4.5,
			ReviewCount: 118,
			InStock:     false,
			SortOrder:   790,
		},
	}

	for _, prod := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Name)
			}
		} else {
			existing.Description = prod.Description
			existing.Category = prod.Category
			existing.Price = prod.Price
			existing.OriginalPrice = prod.OriginalPrice
			existing.ImageURL = prod.ImageURL
			existing.Images = prod.Images
			existing.Rating = prod.Rating
			existing.ReviewCount = prod.ReviewCount
			existing.InStock = prod.InStock
			existing.SortOrder = prod.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Name)
			}
		}
	}

	fmt.Println("\n✅ Demo data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 6 Categories")
	fmt.Println("- 12 Products (2 out of stock)")
	fmt.Println("- Default admin account")
}

func moneyPtr(amount float64) *models.Money {
	m := models.NewMoneyFromDecimal(decimal.NewFromFloat(amount))
	return &m
}
