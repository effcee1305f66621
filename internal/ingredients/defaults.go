package ingredients

import (
	"sync"

	"glowyze-backend/internal/i18n"
)

// Ingredient ids referenced by the recommendation rule tables.
const (
	SalicylicAcid  = "salicylic_acid"
	TeaTree        = "tea_tree"
	AzelaicAcid    = "azelaic_acid"
	VitaminC       = "vitamin_c"
	AlphaArbutin   = "alpha_arbutin"
	Niacinamide    = "niacinamide"
	Retinol        = "retinol"
	Peptides       = "peptides"
	GlycolicAcid   = "glycolic_acid"
	HyaluronicAcid = "hyaluronic_acid"
	Ceramides      = "ceramides"
	Squalane       = "squalane"
	Centella       = "centella"
	SnailMucin     = "snail_mucin"
)

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog(defaultIngredients())
	if err != nil {
		panic(err)
	}
	return c
})

// Default returns the built-in catalog. It is built once and shared.
func Default() *Catalog {
	return defaultCatalog()
}

func defaultIngredients() []Ingredient {
	return []Ingredient{
		// acne & oil control
		{
			ID:       SalicylicAcid,
			Name:     "Salicylic Acid (BHA)",
			Category: CategoryAcneControl,
			Description: i18n.Text{
				EN: "Penetrates pores to clear acne and reduce oil.",
				ID: "Menembus pori-pori untuk membersihkan jerawat dan minyak.",
			},
			DefaultReason: i18n.Text{EN: "Best for Oily & Acne-prone skin", ID: "Terbaik untuk kulit Berminyak & Berjerawat"},
			Icon:          "zap",
			Color:         "red",
		},
		{
			ID:       TeaTree,
			Name:     "Tea Tree Oil",
			Category: CategoryAcneControl,
			Description: i18n.Text{
				EN: "Natural antibacterial properties to fight acne.",
				ID: "Antibakteri alami untuk melawan bakteri penyebab jerawat.",
			},
			DefaultReason: i18n.Text{EN: "Natural solution for Acne", ID: "Solusi alami untuk Jerawat"},
			Icon:          "leaf",
			Color:         "green",
		},
		{
			ID:       AzelaicAcid,
			Name:     "Azelaic Acid",
			Category: CategoryAcneControl,
			Description: i18n.Text{
				EN: "Reduces redness, kills bacteria, and unclogs pores.",
				ID: "Mengurangi kemerahan, membunuh bakteri, dan membuka pori.",
			},
			DefaultReason: i18n.Text{EN: "Great for Acne & Redness", ID: "Bagus untuk Jerawat & Kemerahan"},
			Icon:          "eraser",
			Color:         "rose",
		},

		// brightening & pigmentation
		{
			ID:       VitaminC,
			Name:     "Vitamin C",
			Category: CategoryBrightening,
			Description: i18n.Text{
				EN: "Brightens skin and fades dark spots.",
				ID: "Mencerahkan kulit dan memudarkan bintik hitam.",
			},
			DefaultReason: i18n.Text{EN: "Targets Pigmentation & Dullness", ID: "Target Pigmentasi & Kulit Kusam"},
			Icon:          "sun",
			Color:         "orange",
		},
		{
			ID:       AlphaArbutin,
			Name:     "Alpha Arbutin",
			Category: CategoryBrightening,
			Description: i18n.Text{
				EN: "Gentle skin brightener to reduce hyperpigmentation.",
				ID: "Pencerah kulit lembut untuk mengurangi hiperpigmentasi.",
			},
			DefaultReason: i18n.Text{EN: "Safe for Pigmentation spots", ID: "Aman untuk noda Pigmentasi"},
			Icon:          "sparkles",
			Color:         "amber",
		},
		{
			ID:       Niacinamide,
			Name:     "Niacinamide",
			Category: CategoryBrightening,
			Description: i18n.Text{
				EN: "Regulates oil, minimizes pores, and brightens skin.",
				ID: "Mengatur minyak, mengecilkan pori, dan mencerahkan.",
			},
			DefaultReason: i18n.Text{EN: "Versatile for Oil control & Pigmentation", ID: "Serbaguna untuk kontrol Minyak & Pigmentasi"},
			Icon:          "shield",
			Color:         "blue",
		},

		// anti-aging & texture
		{
			ID:       Retinol,
			Name:     "Retinol",
			Category: CategoryAntiAging,
			Description: i18n.Text{
				EN: "Accelerates cell turnover to reduce wrinkles.",
				ID: "Mempercepat pergantian sel untuk kurangi kerutan.",
			},
			DefaultReason: i18n.Text{EN: "Anti-aging powerhouse for Wrinkles", ID: "Anti-aging ampuh untuk Kerutan"},
			Icon:          "activity",
			Color:         "purple",
		},
		{
			ID:       Peptides,
			Name:     "Peptides",
			Category: CategoryAntiAging,
			Description: i18n.Text{
				EN: "Building blocks of collagen for firmer skin.",
				ID: "Pembangun kolagen untuk kulit lebih kencang.",
			},
			DefaultReason: i18n.Text{EN: "Firming support for Aging skin", ID: "Mengencangkan kulit Menua"},
			Icon:          "activity",
			Color:         "indigo",
		},
		{
			ID:       GlycolicAcid,
			Name:     "Glycolic Acid (AHA)",
			Category: CategoryAntiAging,
			Description: i18n.Text{
				EN: "Exfoliates dead skin cells for smoother texture.",
				ID: "Mengangkat sel kulit mati untuk tekstur lebih halus.",
			},
			DefaultReason: i18n.Text{EN: "Smooths Texture & Fine lines", ID: "Menghaluskan Tekstur & Garis halus"},
			Icon:          "eraser",
			Color:         "pink",
		},

		// hydration & repair
		{
			ID:       HyaluronicAcid,
			Name:     "Hyaluronic Acid",
			Category: CategoryHydration,
			Description: i18n.Text{
				EN: "Draws moisture into the skin for deep hydration.",
				ID: "Menarik kelembapan ke dalam kulit untuk hidrasi mendalam.",
			},
			DefaultReason: i18n.Text{EN: "Essential for Dry & Dehydrated skin", ID: "Penting untuk kulit Kering & Dehidrasi"},
			Icon:          "droplets",
			Color:         "cyan",
		},
		{
			ID:       Ceramides,
			Name:     "Ceramides",
			Category: CategoryHydration,
			Description: i18n.Text{
				EN: "Restores the skin barrier and locks in moisture.",
				ID: "Memperbaiki skin barrier dan mengunci kelembapan.",
			},
			DefaultReason: i18n.Text{EN: "Repair for Dry & Sensitive skin", ID: "Perbaikan untuk kulit Kering & Sensitif"},
			Icon:          "shield",
			Color:         "emerald",
		},
		{
			ID:       Squalane,
			Name:     "Squalane",
			Category: CategoryHydration,
			Description: i18n.Text{
				EN: "Lightweight oil that mimics skin natural oils.",
				ID: "Minyak ringan yang menyerupai minyak alami kulit.",
			},
			DefaultReason: i18n.Text{EN: "Light hydration for all types", ID: "Hidrasi ringan untuk semua tipe"},
			Icon:          "droplets",
			Color:         "teal",
		},
		{
			ID:       Centella,
			Name:     "Centella Asiatica",
			Category: CategoryHydration,
			Description: i18n.Text{
				EN: "Soothes inflammation and redness.",
				ID: "Menenangkan peradangan dan kemerahan.",
			},
			DefaultReason: i18n.Text{EN: "Calming for Sensitive skin", ID: "Menenangkan untuk kulit Sensitif"},
			Icon:          "check-circle",
			Color:         "green",
		},
		{
			ID:       SnailMucin,
			Name:     "Snail Mucin",
			Category: CategoryHydration,
			Description: i18n.Text{
				EN: "Aids in repair and hydration.",
				ID: "Membantu perbaikan dan hidrasi kulit.",
			},
			DefaultReason: i18n.Text{EN: "Repair & Hydration boost", ID: "Peningkat Perbaikan & Hidrasi"},
			Icon:          "sparkles",
			Color:         "slate",
		},
	}
}
