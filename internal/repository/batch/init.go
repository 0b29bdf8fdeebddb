package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

type BatchCreator interface {
	CreateBatch(ctx context.Context, batches []*model.ProductBatch) error
}

// BatchesBootstrap seeds a demo catalog of handcrafted goods.
func BatchesBootstrap(ctx context.Context, c BatchCreator) error {
	now := time.Now().UTC().Truncate(time.Second)
	listed := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	batches := []*model.ProductBatch{
		{
			Title:          "Hand-Woven Kiondo Sisal Basket",
			Description:    "Traditional Kikuyu basket woven from natural sisal with leather handles. Each piece is dyed by hand.",
			Category:       "Home Decor",
			Country:        "Kenya",
			UnitPriceUSD:   18.5,
			MOQ:            50,
			QtyAvailable:   600,
			LeadTimeDays:   21,
			Materials:      []string{"Sisal", "Leather"},
			Specs:          map[string]string{"Diameter": "30 cm", "Height": "28 cm"},
			Images:         []string{"https://picsum.photos/seed/kiondo/800/600"},
			Status:         model.BatchStatusAvailable,
			SupplierID:     "supp_nairobi_weavers",
			MLQualityScore: lo.ToPtr(model.QualityA),
			ListedAt:       listed(30),
		},
		{
			Title:        "Maasai Beaded Leather Bracelet",
			Description:  "Multicolour glass beadwork stitched onto vegetable-tanned leather by Maasai artisans.",
			Category:     "Jewelry",
			Country:      "Kenya",
			UnitPriceUSD: 4.75,
			MOQ:          200,
			QtyAvailable: 5000,
			LeadTimeDays: 14,
			Materials:    []string{"Glass beads", "Leather"},
			Specs:        map[string]string{"Width": "2 cm", "Closure": "Brass snap"},
			Images:       []string{"https://picsum.photos/seed/maasai/800/600"},
			Status:       model.BatchStatusAvailable,
			SupplierID:   "supp_nairobi_weavers",
			ListedAt:     listed(26),
		},
		{
			Title:          "Baby Alpaca Wool Throw",
			Description:    "Soft throw blanket knitted from baby alpaca fibre sourced in the Andean highlands.",
			Category:       "Textiles",
			Country:        "Peru",
			UnitPriceUSD:   89,
			MOQ:            20,
			QtyAvailable:   240,
			LeadTimeDays:   30,
			Materials:      []string{"Baby alpaca wool"},
			Specs:          map[string]string{"Size": "130 x 170 cm", "Weight": "900 g"},
			Images:         []string{"https://picsum.photos/seed/alpaca/800/600"},
			Status:         model.BatchStatusAvailable,
			SupplierID:     "supp_cusco_textiles",
			MLQualityScore: lo.ToPtr(model.QualityA),
			ListedAt:       listed(22),
		},
		{
			Title:        "Shipibo Embroidered Cushion Cover",
			Description:  "Geometric Shipibo-Conibo patterns embroidered on hand-loomed cotton.",
			Category:     "Textiles",
			Country:      "Peru",
			UnitPriceUSD: 22,
			MOQ:          100,
			QtyAvailable: 800,
			LeadTimeDays: 25,
			Materials:    []string{"Cotton", "Embroidery thread"},
			Specs:        map[string]string{"Size": "45 x 45 cm"},
			Images:       []string{"https://picsum.photos/seed/shipibo/800/600"},
			Status:       model.BatchStatusVerifying,
			SupplierID:   "supp_cusco_textiles",
			ListedAt:     listed(18),
		},
		{
			Title:          "Bat Trang Glazed Ceramic Vase",
			Description:    "Wheel-thrown stoneware vase finished with a crackle celadon glaze from Bat Trang village.",
			Category:       "Ceramics",
			Country:        "Vietnam",
			UnitPriceUSD:   34.9,
			MOQ:            40,
			QtyAvailable:   400,
			LeadTimeDays:   35,
			Materials:      []string{"Stoneware", "Celadon glaze"},
			Specs:          map[string]string{"Height": "32 cm"},
			Images:         []string{"https://picsum.photos/seed/battrang/800/600"},
			Status:         model.BatchStatusAvailable,
			SupplierID:     "supp_hanoi_ceramics",
			MLQualityScore: lo.ToPtr(model.QualityB),
			ListedAt:       listed(15),
		},
		{
			Title:        "Lacquered Bamboo Serving Bowl",
			Description:  "Coiled bamboo bowl finished in layers of natural lacquer and eggshell inlay.",
			Category:     "Kitchen",
			Country:      "Vietnam",
			UnitPriceUSD: 12.3,
			MOQ:          150,
			QtyAvailable: 1800,
			LeadTimeDays: 28,
			Materials:    []string{"Bamboo", "Natural lacquer", "Eggshell"},
			Specs:        map[string]string{"Diameter": "25 cm", "Food safe": "Yes"},
			Images:       []string{"https://picsum.photos/seed/bamboo/800/600"},
			Status:       model.BatchStatusAvailable,
			SupplierID:   "supp_hanoi_ceramics",
			ListedAt:     listed(12),
		},
		{
			Title:          "Mayan Backstrap Loom Table Runner",
			Description:    "Brightly patterned runner woven on a backstrap loom by cooperatives around Lake Atitlan.",
			Category:       "Textiles",
			Country:        "Guatemala",
			UnitPriceUSD:   27.5,
			MOQ:            60,
			QtyAvailable:   500,
			LeadTimeDays:   30,
			Materials:      []string{"Cotton"},
			Specs:          map[string]string{"Size": "35 x 180 cm"},
			Images:         []string{"https://picsum.photos/seed/atitlan/800/600"},
			Status:         model.BatchStatusAvailable,
			SupplierID:     "supp_atitlan_coop",
			MLQualityScore: lo.ToPtr(model.QualityB),
			ListedAt:       listed(9),
		},
		{
			Title:        "Block-Printed Cotton Scarf",
			Description:  "Jaipur hand block print using natural indigo and madder dyes on soft mulmul cotton.",
			Category:     "Apparel",
			Country:      "India",
			UnitPriceUSD: 9.8,
			MOQ:          250,
			QtyAvailable: 4000,
			LeadTimeDays: 20,
			Materials:    []string{"Cotton", "Natural dyes"},
			Specs:        map[string]string{"Size": "70 x 180 cm"},
			Images:       []string{"https://picsum.photos/seed/jaipur/800/600"},
			Status:       model.BatchStatusAvailable,
			SupplierID:   "supp_jaipur_prints",
			ListedAt:     listed(6),
		},
		{
			Title:          "Hammered Brass Diya Set",
			Description:    "Set of four oil lamps hand hammered from recycled brass in Moradabad workshops.",
			Category:       "Home Decor",
			Country:        "India",
			UnitPriceUSD:   15.6,
			MOQ:            100,
			QtyAvailable:   1200,
			LeadTimeDays:   18,
			Materials:      []string{"Recycled brass"},
			Specs:          map[string]string{"Pieces": "4"},
			Images:         []string{"https://picsum.photos/seed/diya/800/600"},
			Status:         model.BatchStatusSold,
			SupplierID:     "supp_jaipur_prints",
			MLQualityScore: lo.ToPtr(model.QualityC),
			ListedAt:       listed(4),
		},
		{
			Title:          "Beni Ourain Wool Rug",
			Description:    "Hand-knotted Atlas mountain rug in undyed wool with a classic diamond lattice.",
			Category:       "Rugs",
			Country:        "Morocco",
			UnitPriceUSD:   420,
			MOQ:            5,
			QtyAvailable:   40,
			LeadTimeDays:   45,
			Materials:      []string{"Sheep wool"},
			Specs:          map[string]string{"Size": "200 x 300 cm", "Pile": "2.5 cm"},
			Images:         []string{"https://picsum.photos/seed/beniourain/800/600"},
			Status:         model.BatchStatusAvailable,
			SupplierID:     "supp_fes_artisans",
			MLQualityScore: lo.ToPtr(model.QualityA),
			ListedAt:       listed(2),
		},
		{
			Title:        "Tadelakt Soap Dish",
			Description:  "Polished lime plaster soap dish sealed with olive oil soap in the Marrakech tradition.",
			Category:     "Bath",
			Country:      "Morocco",
			UnitPriceUSD: 7.2,
			MOQ:          300,
			QtyAvailable: 3000,
			LeadTimeDays: 22,
			Materials:    []string{"Tadelakt plaster"},
			Specs:        map[string]string{"Length": "14 cm"},
			Images:       []string{"https://picsum.photos/seed/tadelakt/800/600"},
			Status:       model.BatchStatusVerifying,
			SupplierID:   "supp_fes_artisans",
			ListedAt:     listed(1),
		},
	}

	for _, b := range batches {
		b.ID = "batch_" + uuid.NewString()
		b.ProductID = "prod_" + uuid.NewString()
	}

	return c.CreateBatch(ctx, batches)
}
