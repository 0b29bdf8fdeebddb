package repository

import "time"

type BatchEntity struct {
	ID             string            `bson:"_id"`
	ProductID      string            `bson:"product_id,omitempty"`
	SupplierID     string            `bson:"supplier_id"`
	Title          string            `bson:"title"`
	Description    string            `bson:"description,omitempty"`
	Category       string            `bson:"category"`
	Country        string            `bson:"country"`
	UnitPriceUSD   float64           `bson:"unit_price_usd"`
	MOQ            int64             `bson:"moq"`
	QtyAvailable   int64             `bson:"qty_available"`
	LeadTimeDays   int64             `bson:"lead_time_days"`
	Materials      []string          `bson:"materials,omitempty"`
	Specs          map[string]string `bson:"specs,omitempty"`
	Images         []string          `bson:"images,omitempty"`
	VideoURL       string            `bson:"video_url,omitempty"`
	Status         string            `bson:"status"`
	MLQualityScore *string           `bson:"ml_quality_score,omitempty"`
	ListedAt       time.Time         `bson:"listed_at"`
}
