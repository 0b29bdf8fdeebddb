package repository

import (
	"time"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

// SeedSuppliers returns the profiles of the suppliers behind the demo catalog.
func SeedSuppliers() []model.Supplier {
	since := func(year int, month time.Month) time.Time {
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	}

	return []model.Supplier{
		{
			ID:                 "supp_nairobi_weavers",
			Name:               "Nairobi Weavers Collective",
			Country:            "Kenya",
			VerificationStatus: model.VerificationVerified,
			Rating:             4.8,
			MemberSince:        since(2019, time.March),
			Bio:                "A women-led cooperative of over 120 weavers producing sisal and leather goods using techniques passed down through generations.",
		},
		{
			ID:                 "supp_cusco_textiles",
			Name:               "Cusco Andean Textiles",
			Country:            "Peru",
			VerificationStatus: model.VerificationVerified,
			Rating:             4.6,
			MemberSince:        since(2020, time.June),
			Bio:                "Family workshops in the Sacred Valley spinning and dyeing alpaca wool with natural pigments.",
		},
		{
			ID:                 "supp_hanoi_ceramics",
			Name:               "Bat Trang Ceramics House",
			Country:            "Vietnam",
			VerificationStatus: model.VerificationPending,
			Rating:             4.2,
			MemberSince:        since(2022, time.January),
			Bio:                "Fourth-generation potters from Bat Trang village specialising in celadon and crackle glazes.",
		},
		{
			ID:                 "supp_atitlan_coop",
			Name:               "Lake Atitlan Artisans",
			Country:            "Guatemala",
			VerificationStatus: model.VerificationPending,
			Rating:             4.4,
			MemberSince:        since(2021, time.September),
			Bio:                "Mayan backstrap weavers from the villages around Lake Atitlan.",
		},
		{
			ID:                 "supp_jaipur_prints",
			Name:               "Jaipur Block Print Studio",
			Country:            "India",
			VerificationStatus: model.VerificationVerified,
			Rating:             4.7,
			MemberSince:        since(2018, time.November),
			Bio:                "Hand block printers working with carved teak blocks and vegetable dyes on cotton and silk.",
		},
		{
			ID:                 "supp_fes_artisans",
			Name:               "Fes Medina Artisans",
			Country:            "Morocco",
			VerificationStatus: model.VerificationUnverified,
			Rating:             3.9,
			MemberSince:        since(2023, time.April),
			Bio:                "Leather tanners and brass smiths from the old medina of Fes.",
		},
	}
}
