package repository

import (
	"github.com/samber/lo"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

func EntityToModel(e *BatchEntity) *model.ProductBatch {
	if e == nil {
		return nil
	}

	out := &model.ProductBatch{
		ID:           e.ID,
		ProductID:    e.ProductID,
		SupplierID:   e.SupplierID,
		Title:        e.Title,
		Description:  e.Description,
		Category:     e.Category,
		Country:      e.Country,
		UnitPriceUSD: e.UnitPriceUSD,
		MOQ:          e.MOQ,
		QtyAvailable: e.QtyAvailable,
		LeadTimeDays: e.LeadTimeDays,
		Materials:    e.Materials,
		Specs:        e.Specs,
		Images:       e.Images,
		VideoURL:     e.VideoURL,
		Status:       model.BatchStatus(e.Status),
		ListedAt:     e.ListedAt,
	}

	if e.MLQualityScore != nil {
		out.MLQualityScore = lo.ToPtr(model.QualityScore(*e.MLQualityScore))
	}

	return out
}

func EntityFromModel(b *model.ProductBatch) *BatchEntity {
	if b == nil {
		return nil
	}

	out := &BatchEntity{
		ID:           b.ID,
		ProductID:    b.ProductID,
		SupplierID:   b.SupplierID,
		Title:        b.Title,
		Description:  b.Description,
		Category:     b.Category,
		Country:      b.Country,
		UnitPriceUSD: b.UnitPriceUSD,
		MOQ:          b.MOQ,
		QtyAvailable: b.QtyAvailable,
		LeadTimeDays: b.LeadTimeDays,
		Materials:    b.Materials,
		Specs:        b.Specs,
		Images:       b.Images,
		VideoURL:     b.VideoURL,
		Status:       string(b.Status),
		ListedAt:     b.ListedAt,
	}

	if b.MLQualityScore != nil {
		out.MLQualityScore = lo.ToPtr(string(*b.MLQualityScore))
	}

	return out
}
