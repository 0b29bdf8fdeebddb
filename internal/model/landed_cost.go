package model

import "github.com/shopspring/decimal"

type Destination string

const (
	DestinationUSA    Destination = "USA"
	DestinationEU     Destination = "EU"
	DestinationUK     Destination = "UK"
	DestinationCanada Destination = "Canada"
)

func (d Destination) Valid() bool {
	switch d {
	case DestinationUSA, DestinationEU, DestinationUK, DestinationCanada:
		return true
	}
	return false
}

type LandedCost struct {
	BatchID     string
	Quantity    int64
	Destination Destination

	ProductCost decimal.Decimal
	Shipping    decimal.Decimal
	Duties      decimal.Decimal
	Insurance   decimal.Decimal
	Total       decimal.Decimal
	PerUnit     decimal.Decimal
}
