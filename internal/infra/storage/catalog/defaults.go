package catalog

import (
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/ptr"
)

// DefaultCatalog встроенный каталог, используется если файл каталога не задан
func DefaultCatalog() Catalog {
	return Catalog{
		ServiceTypes: DefaultServiceTypes(),
		PromoCodes:   DefaultPromoCodes(),
		Holidays:     DefaultHolidays(),
	}
}

// DefaultServiceTypes тарифы по умолчанию
func DefaultServiceTypes() []domain.ServiceType {
	return []domain.ServiceType{
		{
			ID:            domain.ServiceManAndVan,
			Name:          "Man and Van",
			BasePrice:     45,
			PricePerKm:    1.20,
			PricePerHour:  ptr.Ptr(35.0),
			ServiceCharge: 0,
			Multiplier:    1.0,
			IncludedServices: []string{
				"1 mover",
				"Loading and unloading",
				"Blankets and straps",
			},
			MaxVolume:    10,
			MaxWeight:    1000,
			CrewSize:     1,
			VehicleClass: domain.VehicleSmallVan,
		},
		{
			ID:            domain.ServiceTwoMenVan,
			Name:          "Two Men and a Van",
			BasePrice:     65,
			PricePerKm:    1.50,
			PricePerHour:  ptr.Ptr(55.0),
			ServiceCharge: 10,
			Multiplier:    1.0,
			IncludedServices: []string{
				"2 movers",
				"Loading and unloading",
				"Blankets and straps",
				"Basic furniture disassembly",
			},
			MaxVolume:    20,
			MaxWeight:    2000,
			CrewSize:     2,
			VehicleClass: domain.VehicleLargeVan,
		},
		{
			ID:            domain.ServicePremium,
			Name:          "Premium White Glove",
			BasePrice:     120,
			PricePerKm:    2.00,
			PricePerHour:  ptr.Ptr(85.0),
			ServiceCharge: 40,
			Multiplier:    1.25,
			IncludedServices: []string{
				"3 movers",
				"Packing materials",
				"Full furniture disassembly and assembly",
				"Goods-in-transit insurance",
			},
			MaxVolume:    35,
			MaxWeight:    3500,
			CrewSize:     3,
			VehicleClass: domain.VehicleLuton,
			Premium:      true,
		},
		{
			ID:               domain.ServiceSelfDrive,
			Name:             "Self-Drive Van Hire",
			BasePrice:        30,
			PricePerKm:       0.80,
			ServiceCharge:    0,
			Multiplier:       0.9,
			IncludedServices: []string{"Van hire", "Basic insurance"},
			MaxVolume:        15,
			MaxWeight:        1500,
			CrewSize:         0,
			VehicleClass:     domain.VehicleSelfDrive,
		},
	}
}

// DefaultPromoCodes промокоды по умолчанию
func DefaultPromoCodes() []domain.PromoCode {
	return []domain.PromoCode{
		{
			Code:          "WELCOME10",
			Description:   "10% off your first move",
			Type:          domain.DiscountPercentage,
			Value:         10,
			MinOrderValue: ptr.Ptr(100.0),
			MaxDiscount:   ptr.Ptr(50.0),
			Conditions:    domain.PromoConditions{FirstTimeCustomerOnly: true},
		},
		{
			Code:          "SAVE20",
			Description:   "£20 off orders over £150",
			Type:          domain.DiscountFixed,
			Value:         20,
			MinOrderValue: ptr.Ptr(150.0),
		},
		{
			Code:          "FREEPACK",
			Description:   "Free packing service",
			Type:          domain.DiscountFreeService,
			Value:         45,
			MinOrderValue: ptr.Ptr(200.0),
			Conditions: domain.PromoConditions{
				ServiceTypes: []string{domain.ServiceTwoMenVan, domain.ServicePremium},
			},
		},
		{
			Code:        "LONGHAUL15",
			Description: "15% off long-distance moves",
			Type:        domain.DiscountPercentage,
			Value:       15,
			MaxDiscount: ptr.Ptr(100.0),
			Conditions:  domain.PromoConditions{MinDistanceKm: 50},
		},
		{
			Code:        "SUMMER2024",
			Description: "Summer 2024 campaign",
			Type:        domain.DiscountPercentage,
			Value:       20,
			ExpiresAt:   ptr.Ptr(time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			Code:        "FLASH50",
			Description: "Flash sale, first 100 customers",
			Type:        domain.DiscountFixed,
			Value:       50,
			UsageLimit:  ptr.Ptr(100),
			UsedCount:   100,
		},
	}
}

// DefaultHolidays банковские праздники Англии и Уэльса
func DefaultHolidays() []Holiday {
	return []Holiday{
		{Date: "2025-01-01", Name: "New Year's Day"},
		{Date: "2025-04-18", Name: "Good Friday"},
		{Date: "2025-04-21", Name: "Easter Monday"},
		{Date: "2025-05-05", Name: "Early May bank holiday"},
		{Date: "2025-05-26", Name: "Spring bank holiday"},
		{Date: "2025-08-25", Name: "Summer bank holiday"},
		{Date: "2025-12-25", Name: "Christmas Day"},
		{Date: "2025-12-26", Name: "Boxing Day"},

		{Date: "2026-01-01", Name: "New Year's Day"},
		{Date: "2026-04-03", Name: "Good Friday"},
		{Date: "2026-04-06", Name: "Easter Monday"},
		{Date: "2026-05-04", Name: "Early May bank holiday"},
		{Date: "2026-05-25", Name: "Spring bank holiday"},
		{Date: "2026-08-31", Name: "Summer bank holiday"},
		{Date: "2026-12-25", Name: "Christmas Day"},
		{Date: "2026-12-28", Name: "Boxing Day (substitute day)"},

		{Date: "2027-01-01", Name: "New Year's Day"},
		{Date: "2027-03-26", Name: "Good Friday"},
		{Date: "2027-03-29", Name: "Easter Monday"},
		{Date: "2027-05-03", Name: "Early May bank holiday"},
		{Date: "2027-05-31", Name: "Spring bank holiday"},
		{Date: "2027-08-30", Name: "Summer bank holiday"},
		{Date: "2027-12-27", Name: "Christmas Day (substitute day)"},
		{Date: "2027-12-28", Name: "Boxing Day (substitute day)"},
	}
}
