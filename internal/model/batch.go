package model

import "time"

type BatchStatus string

const (
	BatchStatusVerifying BatchStatus = "verifying"
	BatchStatusAvailable BatchStatus = "available"
	BatchStatusSold      BatchStatus = "sold"
)

func (s BatchStatus) Valid() bool {
	switch s {
	case BatchStatusVerifying, BatchStatusAvailable, BatchStatusSold:
		return true
	}
	return false
}

type QualityScore string

const (
	QualityA QualityScore = "A"
	QualityB QualityScore = "B"
	QualityC QualityScore = "C"
	QualityD QualityScore = "D"
)

func (q QualityScore) Valid() bool {
	switch q {
	case QualityA, QualityB, QualityC, QualityD:
		return true
	}
	return false
}

// ProductBatch is a supplier's listing of a quantity of one handcrafted product.
// Batches are never mutated once they enter the catalog.
type ProductBatch struct {
	ID         string
	ProductID  string
	SupplierID string

	Title       string
	Description string
	Category    string
	Country     string

	UnitPriceUSD float64
	MOQ          int64
	QtyAvailable int64
	LeadTimeDays int64

	Materials []string
	Specs     map[string]string
	// The first image is the thumbnail.
	Images   []string
	VideoURL string

	Status         BatchStatus
	MLQualityScore *QualityScore

	ListedAt time.Time
}

// EventBatchListed tags catalog.batch_listed records.
const EventBatchListed = "batch_listed"
