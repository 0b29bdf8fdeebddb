package converter

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

// batchListedRecord is the JSON payload of catalog.batch_listed.
type batchListedRecord struct {
	EventID        string            `json:"eventId"`
	ID             string            `json:"id"`
	ProductID      string            `json:"productId,omitempty"`
	SupplierID     string            `json:"supplierId"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Country        string            `json:"country"`
	UnitPriceUSD   float64           `json:"unitPriceUSD"`
	MOQ            int64             `json:"moq"`
	QtyAvailable   int64             `json:"qtyAvailable"`
	LeadTimeDays   int64             `json:"leadTimeDays"`
	Materials      []string          `json:"materials"`
	Specs          map[string]string `json:"specs"`
	Images         []string          `json:"images"`
	VideoURL       string            `json:"videoUrl,omitempty"`
	Status         string            `json:"status"`
	MLQualityScore *string           `json:"mlQualityScore,omitempty"`
	ListedAt       time.Time         `json:"listedAt"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) BatchListedToPayload(b *model.ProductBatch) ([]byte, error) {
	rec := batchListedRecord{
		EventID:      uuid.NewString(),
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
		rec.MLQualityScore = lo.ToPtr(string(*b.MLQualityScore))
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch listed record: %w", err)
	}
	return payload, nil
}

func (c *kafkaConverter) BatchListedFromPayload(data []byte) (*model.ProductBatch, error) {
	var rec batchListedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal batch listed record: %w", err)
	}
	if rec.ID == "" {
		return nil, errors.Join(model.ErrValidation, errors.New("batch listed record without id"))
	}

	b := &model.ProductBatch{
		ID:           rec.ID,
		ProductID:    rec.ProductID,
		SupplierID:   rec.SupplierID,
		Title:        rec.Title,
		Description:  rec.Description,
		Category:     rec.Category,
		Country:      rec.Country,
		UnitPriceUSD: rec.UnitPriceUSD,
		MOQ:          rec.MOQ,
		QtyAvailable: rec.QtyAvailable,
		LeadTimeDays: rec.LeadTimeDays,
		Materials:    rec.Materials,
		Specs:        rec.Specs,
		Images:       rec.Images,
		VideoURL:     rec.VideoURL,
		Status:       model.BatchStatus(rec.Status),
		ListedAt:     rec.ListedAt,
	}
	if rec.MLQualityScore != nil {
		b.MLQualityScore = lo.ToPtr(model.QualityScore(*rec.MLQualityScore))
	}
	return b, nil
}
