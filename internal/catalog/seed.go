package catalog

import (
	"context" // Context for storage operations
	"strconv" // Count formatting

	"hardware_store/internal/domain" // Domain models
)

// DefaultCategories returns the fixed taxonomy seeded on first read
func DefaultCategories() []domain.ProductCategory {
	return []domain.ProductCategory{
		{
			ID:          "hardware-tools",
			Name:        "Hardware Tools & Equipment",
			Description: "Professional-grade tools and equipment for all your construction and maintenance needs.",
			Icon:        "M19.428 15.428a2 2 0 00-1.022-.547l-2.387-.477a6 6 0 00-3.86.517l-.318.158a6 6 0 01-3.86.517L6.05 15.21a2 2 0 00-1.806.547M8 4h8l-1 1v5.172a2 2 0 00.586 1.414l5 5c1.26 1.26.367 3.414-1.415 3.414H4.828c-1.782 0-2.674-2.154-1.414-3.414l5-5A2 2 0 009 7.172V5L8 4z",
			ColorScheme: domain.ColorScheme{
				Bg:          "bg-gradient-to-br from-blue-50 to-indigo-100",
				IconBg:      "bg-gradient-to-r from-blue-500 to-indigo-600",
				IconColor:   "text-white",
				CheckColor:  "text-blue-600",
				BorderColor: "border-blue-200",
				ShadowColor: "hover:shadow-blue-200/50",
			},
		},
		{
			ID:          "plywood-timber",
			Name:        "Plywood & Timber",
			Description: "Premium quality plywood, timber, and wood products for construction and furniture making.",
			Icon:        "M19 21V5a2 2 0 00-2-2H7a2 2 0 00-2 2v16m14 0h2m-2 0h-5m-9 0H3m2 0h5M9 7h1m-1 4h1m4-4h1m-1 4h1m-5 10v-5a1 1 0 011-1h2a1 1 0 011 1v5m-4 0h4",
			ColorScheme: domain.ColorScheme{
				Bg:          "bg-gradient-to-br from-green-50 to-emerald-100",
				IconBg:      "bg-gradient-to-r from-green-500 to-emerald-600",
				IconColor:   "text-white",
				CheckColor:  "text-green-600",
				BorderColor: "border-green-200",
				ShadowColor: "hover:shadow-green-200/50",
			},
		},
		{
			ID:          "electrical-supplies",
			Name:        "Electrical Supplies",
			Description: "Complete range of electrical components, wiring solutions, and lighting fixtures.",
			Icon:        "M13 10V3L4 14h7v7l9-11h-7z",
			ColorScheme: domain.ColorScheme{
				Bg:          "bg-gradient-to-br from-yellow-50 to-amber-100",
				IconBg:      "bg-gradient-to-r from-yellow-500 to-amber-600",
				IconColor:   "text-white",
				CheckColor:  "text-yellow-600",
				BorderColor: "border-yellow-200",
				ShadowColor: "hover:shadow-yellow-200/50",
			},
		},
		{
			ID:          "construction-materials",
			Name:        "Construction Materials",
			Description: "High-quality cement, bricks, steel, and other essential building materials.",
			Icon:        "M19 11H5m14 0a2 2 0 012 2v6a2 2 0 01-2 2H5a2 2 0 01-2-2v-6a2 2 0 012-2m14 0V9a2 2 0 00-2-2M5 11V9a2 2 0 012-2m0 0V5a2 2 0 012-2h6a2 2 0 012 2v2M7 7h10",
			ColorScheme: domain.ColorScheme{
				Bg:          "bg-gradient-to-br from-red-50 to-rose-100",
				IconBg:      "bg-gradient-to-r from-red-500 to-rose-600",
				IconColor:   "text-white",
				CheckColor:  "text-red-600",
				BorderColor: "border-red-200",
				ShadowColor: "hover:shadow-red-200/50",
			},
		},
		{
			ID:          "plumbing-sanitation",
			Name:        "Plumbing & Sanitation",
			Description: "Complete plumbing solutions including pipes, fittings, and sanitary fixtures.",
			Icon:        "M12 6V4m0 2a2 2 0 100 4m0-4a2 2 0 110 4m-6 8a2 2 0 100-4m0 4a2 2 0 100 4m0-4v2m0-6V4m6 6v10m6-2a2 2 0 100-4m0 4a2 2 0 100 4m0-4v2m0-6V4",
			ColorScheme: domain.ColorScheme{
				Bg:          "bg-gradient-to-br from-cyan-50 to-blue-100",
				IconBg:      "bg-gradient-to-r from-cyan-500 to-blue-600",
				IconColor:   "text-white",
				CheckColor:  "text-cyan-600",
				BorderColor: "border-cyan-200",
				ShadowColor: "hover:shadow-cyan-200/50",
			},
		},
		{
			ID:          "paint-finishing",
			Name:        "Paint & Finishing",
			Description: "Quality paints, primers, and finishing materials for interior and exterior applications.",
			Icon:        "M4.318 6.318a4.5 4.5 0 000 6.364L12 20.364l7.682-7.682a4.5 4.5 0 00-6.364-6.364L12 7.636l-1.318-1.318a4.5 4.5 0 00-6.364 0z",
			ColorScheme: domain.ColorScheme{
				Bg:          "bg-gradient-to-br from-purple-50 to-violet-100",
				IconBg:      "bg-gradient-to-r from-purple-500 to-violet-600",
				IconColor:   "text-white",
				CheckColor:  "text-purple-600",
				BorderColor: "border-purple-200",
				ShadowColor: "hover:shadow-purple-200/50",
			},
		},
	}
}

// SampleProducts returns the demo catalog used for first-time setup
func SampleProducts() []ProductInput {
	return []ProductInput{
		// Hardware Tools & Equipment
		{
			Name:        "Professional Drill Set",
			Description: "High-quality cordless drill with multiple bits for all your drilling needs",
			Category:    "hardware-tools",
			Price:       2500.00,
			Features:    []string{"Cordless Design", "Multiple Drill Bits", "LED Light", "Variable Speed"},
			IsActive:    true,
		},
		{
			Name:        "Hammer Set",
			Description: "Durable steel hammers in various sizes for construction work",
			Category:    "hardware-tools",
			Price:       850.00,
			Features:    []string{"Steel Construction", "Ergonomic Handle", "Multiple Sizes", "Non-slip Grip"},
			IsActive:    true,
		},
		{
			Name:        "Screwdriver Kit",
			Description: "Complete set of precision screwdrivers for various applications",
			Category:    "hardware-tools",
			Price:       450.00,
			Features:    []string{"Magnetic Tips", "Precision Engineered", "Multiple Sizes", "Storage Case"},
			IsActive:    true,
		},

		// Plywood & Timber
		{
			Name:        "Marine Grade Plywood",
			Description: "Premium waterproof plywood suitable for marine and outdoor applications",
			Category:    "plywood-timber",
			Price:       3200.00,
			Features:    []string{"Waterproof", "High Durability", "Smooth Finish", "8x4 feet"},
			IsActive:    true,
		},
		{
			Name:        "Teak Wood Planks",
			Description: "Premium quality teak wood planks for furniture and interior work",
			Category:    "plywood-timber",
			Price:       1800.00,
			Features:    []string{"Natural Teak", "Premium Grade", "Smooth Finish", "Kiln Dried"},
			IsActive:    true,
		},
		{
			Name:        "Commercial Plywood",
			Description: "Standard commercial grade plywood for general construction use",
			Category:    "plywood-timber",
			Price:       1450.00,
			Features:    []string{"BWR Grade", "Termite Resistant", "Smooth Surface", "Multiple Sizes"},
			IsActive:    true,
		},

		// Electrical Supplies
		{
			Name:        "LED Tube Lights",
			Description: "Energy efficient LED tube lights for home and office illumination",
			Category:    "electrical-supplies",
			Price:       320.00,
			Features:    []string{"Energy Efficient", "Long Lasting", "Bright Light", "Easy Installation"},
			IsActive:    true,
		},
		{
			Name:        "Electrical Cables",
			Description: "High quality copper electrical cables for house wiring",
			Category:    "electrical-supplies",
			Price:       180.00,
			Features:    []string{"Pure Copper", "ISI Marked", "Fire Resistant", "Multiple Gauge"},
			IsActive:    true,
		},
		{
			Name:        "Switch & Socket Set",
			Description: "Modular switches and sockets for modern electrical installations",
			Category:    "electrical-supplies",
			Price:       75.00,
			Features:    []string{"Modular Design", "Easy Installation", "Durable Plastic", "Multiple Colors"},
			IsActive:    true,
		},

		// Construction Materials
		{
			Name:        "Portland Cement",
			Description: "High strength Portland cement for all construction applications",
			Category:    "construction-materials",
			Price:       420.00,
			Features:    []string{"High Strength", "Fast Setting", "Weather Resistant", "50kg Bag"},
			IsActive:    true,
		},
		{
			Name:        "Steel TMT Bars",
			Description: "High tensile strength TMT bars for reinforced concrete construction",
			Category:    "construction-materials",
			Price:       52.00,
			Features:    []string{"High Tensile Strength", "Corrosion Resistant", "Earthquake Resistant", "Fe500 Grade"},
			IsActive:    true,
		},
		{
			Name:        "Red Bricks",
			Description: "High quality red bricks for construction and masonry work",
			Category:    "construction-materials",
			Price:       8.50,
			Features:    []string{"High Strength", "Uniform Shape", "Low Water Absorption", "Standard Size"},
			IsActive:    true,
		},

		// Plumbing & Sanitation
		{
			Name:        "PVC Pipes",
			Description: "Durable PVC pipes for plumbing and drainage applications",
			Category:    "plumbing-sanitation",
			Price:       125.00,
			Features:    []string{"Corrosion Resistant", "Lightweight", "Easy Installation", "Multiple Sizes"},
			IsActive:    true,
		},
		{
			Name:        "Water Taps",
			Description: "Premium quality brass water taps for kitchen and bathroom",
			Category:    "plumbing-sanitation",
			Price:       450.00,
			Features:    []string{"Brass Construction", "Chrome Finish", "Leak Proof", "Modern Design"},
			IsActive:    true,
		},
		{
			Name:        "Bathroom Fittings",
			Description: "Complete set of bathroom fittings including shower and accessories",
			Category:    "plumbing-sanitation",
			Price:       2200.00,
			Features:    []string{"Complete Set", "Stainless Steel", "Modern Design", "Easy Installation"},
			IsActive:    true,
		},

		// Paint & Finishing
		{
			Name:        "Interior Wall Paint",
			Description: "Premium quality interior wall paint with excellent coverage",
			Category:    "paint-finishing",
			Price:       280.00,
			Features:    []string{"Washable", "Low Odor", "Excellent Coverage", "Multiple Colors"},
			IsActive:    true,
		},
		{
			Name:        "Wood Stain",
			Description: "High quality wood stain for furniture and wooden surfaces",
			Category:    "paint-finishing",
			Price:       420.00,
			Features:    []string{"Deep Penetration", "Weather Resistant", "Natural Finish", "Multiple Shades"},
			IsActive:    true,
		},
		{
			Name:        "Paint Brushes Set",
			Description: "Professional quality paint brushes for all painting applications",
			Category:    "paint-finishing",
			Price:       180.00,
			Features:    []string{"Natural Bristles", "Multiple Sizes", "Ergonomic Handle", "Durable"},
			IsActive:    true,
		},
	}
}

// SeedSampleProducts loads the sample catalog when no products exist yet.
// It reports how many products were added; an already-populated catalog is
// left untouched.
func (s *Store) SeedSampleProducts(ctx context.Context) (domain.Result, int) {
	if len(s.StoredProducts(ctx)) > 0 {
		return domain.OK("Products already exist, no initialization needed"), 0
	}
	added := 0
	for _, input := range SampleProducts() {
		if result, _ := s.Add(ctx, input); result.Success {
			added++
		}
	}
	return domain.OK("Sample products initialized: " + strconv.Itoa(added) + " added"), added
}
