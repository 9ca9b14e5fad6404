package seed

import (
	"time"

	"smartstock/models"
)

func ptr[T any](v T) *T { return &v }

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// Default returns a fresh copy of the built-in mock dataset.
func Default() *Dataset {
	return &Dataset{
		SKUs:            mockSKUs(),
		Recommendations: mockRecommendations(),
		Events:          mockEvents(),
		StoreMetrics:    mockStoreMetrics(),
		WeatherImpact:   mockWeatherImpact(),
		UserProfile:     mockUserProfile(),
		Bundles:         mockBundles(),
		KPITiles:        mockKPITiles(),
		DemandBubbles:   mockDemandBubbles(),
	}
}

func mockSKUs() []models.SKU {
	return []models.SKU{
		{ID: "sku-001", Name: "Coca Cola 500ml", Category: "Beverages", CurrentStock: 145, MinStock: 50, MaxStock: 300, Price: 2.50, ImageURL: ptr("/coke.png"), Barcode: "4894128302847", Supplier: "Coca Cola Company"},
		{ID: "sku-002", Name: "Lay's Original Chips", Category: "Snacks", CurrentStock: 89, MinStock: 30, MaxStock: 200, Price: 3.50, ImageURL: ptr("/lays.png"), Barcode: "4894128302848", Supplier: "PepsiCo"},
		{ID: "sku-003", Name: "Cup Noodles Seafood", Category: "Instant Food", CurrentStock: 23, MinStock: 40, MaxStock: 150, Price: 1.80, ImageURL: ptr("/noodles.png"), Barcode: "4894128302849", Supplier: "Nissin Foods"},
		{ID: "sku-004", Name: "Red Bull Energy Drink", Category: "Beverages", CurrentStock: 67, MinStock: 40, MaxStock: 120, Price: 4.50, ImageURL: ptr("/energy.png"), Barcode: "4894128302850", Supplier: "Red Bull GmbH"},
		{ID: "sku-005", Name: "Pocky Chocolate", Category: "Snacks", CurrentStock: 156, MinStock: 50, MaxStock: 250, Price: 2.20, Barcode: "4894128302851", Supplier: "Glico"},
		{ID: "sku-006", Name: "Onigiri Tuna Mayo", Category: "Fresh Food", CurrentStock: 12, MinStock: 20, MaxStock: 60, Price: 3.80, Barcode: "4894128302852", Supplier: "Local Kitchen"},
		{ID: "sku-007", Name: "Asahi Beer 350ml", Category: "Alcohol", CurrentStock: 234, MinStock: 100, MaxStock: 400, Price: 5.50, ImageURL: ptr("/beer.png"), Barcode: "4894128302853", Supplier: "Asahi Breweries"},
		{ID: "sku-008", Name: "KitKat Green Tea", Category: "Snacks", CurrentStock: 78, MinStock: 40, MaxStock: 200, Price: 2.80, Barcode: "4894128302854", Supplier: "Nestle"},
		{ID: "sku-009", Name: "Fresh Eggs (6 pack)", Category: "Fresh Food", CurrentStock: 45, MinStock: 30, MaxStock: 100, Price: 4.20, Barcode: "4894128302855", Supplier: "Farm Fresh"},
		{ID: "sku-010", Name: "Umbrella - Compact", Category: "Non-Food", CurrentStock: 8, MinStock: 15, MaxStock: 40, Price: 12.00, ImageURL: ptr("/umbrella.png"), Barcode: "4894128302856", Supplier: "Weather Gear Co."},
		{ID: "sku-011", Name: "Chicken Sandwich", Category: "Ready-to-Eat", CurrentStock: 28, MinStock: 35, MaxStock: 80, Price: 6.50, Barcode: "4894128302857", Supplier: "Fresh Express"},
		{ID: "sku-012", Name: "Beef Wrap", Category: "Ready-to-Eat", CurrentStock: 15, MinStock: 25, MaxStock: 60, Price: 7.20, Barcode: "4894128302858", Supplier: "Fresh Express"},
		{ID: "sku-013", Name: "Colgate Toothpaste", Category: "Personal Care", CurrentStock: 42, MinStock: 30, MaxStock: 100, Price: 4.80, Barcode: "4894128302859", Supplier: "Colgate-Palmolive"},
		{ID: "sku-014", Name: "Hot Dog", Category: "Ready-to-Eat", CurrentStock: 18, MinStock: 30, MaxStock: 70, Price: 3.50, Barcode: "4894128302860", Supplier: "Quick Bites"},
		{ID: "sku-015", Name: "Paper Towels", Category: "Household", CurrentStock: 35, MinStock: 20, MaxStock: 80, Price: 5.20, Barcode: "4894128302861", Supplier: "Clean & Co"},
		{ID: "sku-016", Name: "Hand Soap", Category: "Personal Care", CurrentStock: 28, MinStock: 25, MaxStock: 75, Price: 3.80, Barcode: "4894128302862", Supplier: "Clean & Fresh"},
	}
}

func mockRecommendations() []models.Recommendation {
	return []models.Recommendation{
		{
			ID: "rec-001", SKU: "sku-003", SKUName: "Cup Noodles Seafood", ImageURL: ptr("/noodles.png"),
			Action: models.ActionRestock, Confidence: 0.92, ImpactScore: 85,
			Reasons:  []string{"Below minimum stock", "Rainy weather forecast", "High demand trend"},
			Quantity: ptr(80), ShelfFit: true, CrossSellSuggestions: []string{"Fresh Eggs", "Bottled Water"},
			EstimatedRevenue: ptr(144.0), Volatility: 0.3, Priority: models.PriorityHigh, CreatedAt: at(2025, 10, 4, 8, 0),
		},
		{
			ID: "rec-002", SKU: "sku-010", SKUName: "Umbrella - Compact", ImageURL: ptr("/umbrella.png"),
			Action: models.ActionRestock, Confidence: 0.88, ImpactScore: 78,
			Reasons:  []string{"Heavy rain forecast", "Below minimum stock", "Seasonal demand"},
			Quantity: ptr(25), ShelfFit: true, CrossSellSuggestions: []string{"Raincoat", "Waterproof Phone Case"},
			EstimatedRevenue: ptr(300.0), Volatility: 0.6, Priority: models.PriorityHigh, CreatedAt: at(2025, 10, 4, 8, 15),
		},
		{
			ID: "rec-003", SKU: "sku-002", SKUName: "Lay's Original Chips", ImageURL: ptr("/lays.png"),
			Action: models.ActionPromote, Confidence: 0.75, ImpactScore: 65,
			Reasons:  []string{"Football match tonight", "Bundle opportunity with beer"},
			Quantity: ptr(0), ShelfFit: true, CrossSellSuggestions: []string{"Asahi Beer", "Coca Cola"},
			EstimatedRevenue: ptr(210.0), Volatility: 0.4, Priority: models.PriorityMedium, CreatedAt: at(2025, 10, 4, 9, 0),
		},
		{
			ID: "rec-004", SKU: "sku-007", SKUName: "Asahi Beer 350ml", ImageURL: ptr("/beer.png"),
			Action: models.ActionPromote, Confidence: 0.82, ImpactScore: 72,
			Reasons:  []string{"Football World Cup Finals", "Weekend peak", "Bundle with snacks"},
			Quantity: ptr(0), ShelfFit: true, CrossSellSuggestions: []string{"Lay's Chips", "Peanuts"},
			EstimatedRevenue: ptr(550.0), Volatility: 0.2, Priority: models.PriorityHigh, CreatedAt: at(2025, 10, 4, 9, 30),
		},
		{
			ID: "rec-005", SKU: "sku-006", SKUName: "Onigiri Tuna Mayo",
			Action: models.ActionReplace, Confidence: 0.68, ImpactScore: 45,
			Reasons:  []string{"Low turnover rate", "Near expiry", "Better alternatives available"},
			Quantity: ptr(0), ShelfFit: true, CrossSellSuggestions: []string{"Sandwich", "Sushi Roll"},
			EstimatedRevenue: ptr(-45.0), Volatility: 0.7, Priority: models.PriorityLow, CreatedAt: at(2025, 10, 4, 10, 0),
		},
		{
			ID: "rec-006", SKU: "sku-004", SKUName: "Red Bull Energy Drink", ImageURL: ptr("/energy.png"),
			Action: models.ActionRestock, Confidence: 0.79, ImpactScore: 68,
			Reasons:  []string{"University exam period", "Night shift workers", "Gaming tournament"},
			Quantity: ptr(60), ShelfFit: true, CrossSellSuggestions: []string{"Coffee", "Energy Bars"},
			EstimatedRevenue: ptr(270.0), Volatility: 0.35, Priority: models.PriorityMedium, CreatedAt: at(2025, 10, 4, 10, 30),
		},
		{
			ID: "rec-007", SKU: "sku-011", SKUName: "Chicken Sandwich",
			Action: models.ActionRestock, Confidence: 0.86, ImpactScore: 73,
			Reasons:  []string{"Below minimum stock", "Lunch rush approaching", "High office worker demand"},
			Quantity: ptr(45), ShelfFit: true, CrossSellSuggestions: []string{"Coca Cola", "Lay's Chips"},
			EstimatedRevenue: ptr(292.0), Volatility: 0.4, Priority: models.PriorityHigh, CreatedAt: at(2025, 10, 4, 11, 0),
		},
		{
			ID: "rec-008", SKU: "sku-012", SKUName: "Beef Wrap",
			Action: models.ActionRestock, Confidence: 0.81, ImpactScore: 69,
			Reasons:  []string{"Below minimum stock", "Healthy option trending", "University lunch demand"},
			Quantity: ptr(35), ShelfFit: true, CrossSellSuggestions: []string{"Fresh Juice", "Yogurt"},
			EstimatedRevenue: ptr(252.0), Volatility: 0.3, Priority: models.PriorityHigh, CreatedAt: at(2025, 10, 4, 11, 15),
		},
		{
			ID: "rec-009", SKU: "sku-013", SKUName: "Colgate Toothpaste",
			Action: models.ActionPromote, Confidence: 0.74, ImpactScore: 58,
			Reasons:  []string{"Essential item", "Brand loyalty high", "Bundle opportunity with toothbrush"},
			Quantity: ptr(0), ShelfFit: true, CrossSellSuggestions: []string{"Toothbrush", "Mouthwash"},
			EstimatedRevenue: ptr(144.0), Volatility: 0.2, Priority: models.PriorityMedium, CreatedAt: at(2025, 10, 4, 11, 30),
		},
		{
			ID: "rec-010", SKU: "sku-014", SKUName: "Hot Dog",
			Action: models.ActionRestock, Confidence: 0.83, ImpactScore: 71,
			Reasons:  []string{"Below minimum stock", "Quick meal demand", "Late night workers"},
			Quantity: ptr(40), ShelfFit: true, CrossSellSuggestions: []string{"Soft Drink", "Chips"},
			EstimatedRevenue: ptr(140.0), Volatility: 0.45, Priority: models.PriorityHigh, CreatedAt: at(2025, 10, 4, 11, 45),
		},
		{
			ID: "rec-011", SKU: "sku-015", SKUName: "Paper Towels",
			Action: models.ActionPromote, Confidence: 0.71, ImpactScore: 55,
			Reasons:  []string{"Household essential", "Bulk purchase opportunity", "Rainy season demand"},
			Quantity: ptr(0), ShelfFit: true, CrossSellSuggestions: []string{"Tissue Paper", "Cleaning Spray"},
			EstimatedRevenue: ptr(156.0), Volatility: 0.25, Priority: models.PriorityMedium, CreatedAt: at(2025, 10, 4, 12, 0),
		},
		{
			ID: "rec-012", SKU: "sku-016", SKUName: "Hand Soap",
			Action: models.ActionPromote, Confidence: 0.78, ImpactScore: 62,
			Reasons:  []string{"Health awareness high", "Essential hygiene item", "Post-pandemic behavior"},
			Quantity: ptr(0), ShelfFit: true, CrossSellSuggestions: []string{"Hand Sanitizer", "Tissues"},
			EstimatedRevenue: ptr(114.0), Volatility: 0.3, Priority: models.PriorityMedium, CreatedAt: at(2025, 10, 4, 12, 15),
		},
	}
}

func mockEvents() []models.Event {
	return []models.Event{
		{
			ID: "event-001", Name: "Football World Cup Finals", Type: models.EventFootball,
			Date: at(2025, 10, 4, 20, 0), Impact: models.PriorityHigh,
			AffectedCategories:        []string{"Beverages", "Snacks", "Alcohol"},
			EstimatedDemandMultiplier: 2.5,
			Location:                  ptr("National Stadium"),
			Description:               ptr("Japan vs Brazil final match"),
		},
		{
			ID: "event-002", Name: "Heavy Rain Forecast", Type: models.EventWeather,
			Date: at(2025, 10, 5, 0, 0), Impact: models.PriorityMedium,
			AffectedCategories:        []string{"Instant Food", "Non-Food", "Beverages"},
			EstimatedDemandMultiplier: 1.8,
			Description:               ptr("Heavy rainfall expected for next 48 hours"),
		},
		{
			ID: "event-003", Name: "Mid-Autumn Festival", Type: models.EventFestival,
			Date: at(2025, 10, 7, 0, 0), Impact: models.PriorityMedium,
			AffectedCategories:        []string{"Snacks", "Fresh Food"},
			EstimatedDemandMultiplier: 1.6,
			Description:               ptr("Traditional mooncake festival"),
		},
		{
			ID: "event-004", Name: "Local Music Festival", Type: models.EventConcert,
			Date: at(2025, 10, 6, 18, 0), Impact: models.PriorityLow,
			AffectedCategories:        []string{"Beverages", "Snacks"},
			EstimatedDemandMultiplier: 1.3,
			Location:                  ptr("City Park"),
			Description:               ptr("Annual summer music festival"),
		},
	}
}

func mockStoreMetrics() models.StoreMetrics {
	return models.StoreMetrics{
		StoreID:                "STORE-7E-JP-001",
		StoreName:              "Ho Chi Minh City",
		Rank:                   3,
		TotalRanks:             250,
		LastSync:               at(2025, 10, 4, 11, 30),
		Revenue:                125000,
		RevenueDelta:           12.5,
		WasteReduction:         23.8,
		StockoutRate:           2.3,
		CustomerSatisfaction:   4.6,
		PendingRecommendations: 12,
	}
}

func mockBundles() []models.Bundle {
	return []models.Bundle{
		{ID: "bundle-001", Name: "Game Day Combo", Items: []string{"Lay's Original Chips", "Asahi Beer 350ml", "Peanuts"}, AttachRate: ptr(0.68), ProjectedUplift: 28, Active: true, Price: 12.50, Discount: 15},
		{ID: "bundle-002", Name: "Rainy Day Comfort", Items: []string{"Cup Noodles Seafood", "Fresh Eggs", "Hot Coffee"}, AttachRate: ptr(0.52), ProjectedUplift: 18, Active: true, Price: 8.80, Discount: 10},
		{ID: "bundle-003", Name: "Study Fuel Pack", Items: []string{"Red Bull Energy Drink", "KitKat Green Tea", "Sandwich"}, AttachRate: ptr(0.45), ProjectedUplift: 22, Active: false, Price: 10.50, Discount: 12},
	}
}

func mockWeatherImpact() models.WeatherImpact {
	return models.WeatherImpact{
		Condition:          "RAINY",
		Temperature:        22,
		Humidity:           85,
		Forecast48h:        "Heavy rain continuing for next 2 days",
		DemandModifier:     1.4,
		AffectedCategories: []string{"Instant Food", "Hot Beverages", "Umbrellas"},
	}
}

func mockDemandBubbles() []models.DemandBubble {
	bubble := func(label string, x, y, size, volatility, confidence float64, action models.RecAction) models.DemandBubble {
		return models.DemandBubble{
			SKU: label, Label: label, X: x, Y: y, Size: size,
			Color: models.ActionColor(action), Volatility: volatility, Confidence: confidence, Action: action,
		}
	}
	return []models.DemandBubble{
		bubble("Cup Noodles", 20, 30, 85, 0.3, 0.92, models.ActionRestock),
		bubble("Umbrella", 35, 45, 78, 0.6, 0.88, models.ActionRestock),
		bubble("Beer", 60, 55, 72, 0.2, 0.82, models.ActionPromote),
		bubble("Chips", 50, 25, 65, 0.4, 0.75, models.ActionPromote),
		bubble("Red Bull", 75, 40, 68, 0.35, 0.79, models.ActionRestock),
		bubble("Onigiri", 85, 70, 45, 0.7, 0.68, models.ActionReplace),
	}
}

func mockKPITiles() []models.KPITile {
	return []models.KPITile{
		{Title: "Revenue Today", Value: "$12,450", Delta: ptr(12.5), DeltaType: "increase", SparklineData: []float64{100, 115, 108, 122, 118, 125}, Unit: "USD", Tooltip: "Total revenue for current day"},
		{Title: "Waste Reduction", Value: "23.8%", Delta: ptr(5.2), DeltaType: "increase", SparklineData: []float64{18, 19, 20, 21, 22, 24}, Unit: "%", Tooltip: "Percentage reduction in product waste"},
		{Title: "Stockout Rate", Value: "2.3%", Delta: ptr(-0.8), DeltaType: "decrease", SparklineData: []float64{3.5, 3.2, 2.8, 2.5, 2.4, 2.3}, Unit: "%", Tooltip: "Percentage of items out of stock"},
		{Title: "Customer Satisfaction", Value: "4.6", Delta: ptr(0.2), DeltaType: "increase", SparklineData: []float64{4.3, 4.4, 4.4, 4.5, 4.5, 4.6}, Unit: "/5", Tooltip: "Average customer rating"},
		{Title: "Active Recommendations", Value: "12", Delta: ptr(3.0), DeltaType: "increase", SparklineData: []float64{8, 9, 10, 11, 10, 12}, Tooltip: "Number of pending recommendations"},
		{Title: "Store Rank", Value: "#3", Delta: ptr(2.0), DeltaType: "increase", SparklineData: []float64{8, 7, 6, 5, 4, 3}, Tooltip: "Ranking among all stores in region"},
	}
}

func mockUserProfile() models.UserProfile {
	return models.UserProfile{
		ID:        "user-001",
		Name:      "Takeshi Yamamoto",
		Role:      models.RoleStoreManager,
		StoreID:   ptr("STORE-7E-JP-001"),
		LastLogin: at(2025, 10, 4, 8, 0),
		Preferences: models.UserPreferences{
			Theme:         models.ThemeLight,
			Language:      "en",
			Notifications: true,
		},
	}
}
