package landedcost

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

var (
	shippingPerUnit = decimal.RequireFromString("3.50")
	dutyRate        = decimal.RequireFromString("0.08")
	insuranceRate   = decimal.RequireFromString("0.01")
)

// Estimate prices quantity units of batch delivered to dest.
// Rates are flat across destinations.
func Estimate(batch *model.ProductBatch, quantity int64, dest model.Destination) (model.LandedCost, error) {
	switch {
	case batch == nil:
		return model.LandedCost{}, errors.Join(model.ErrValidation, errors.New("batch must be non-nil"))
	case !dest.Valid():
		return model.LandedCost{}, errors.Join(model.ErrValidation, fmt.Errorf("unknown destination %q", dest))
	case quantity <= 0:
		return model.LandedCost{}, errors.Join(model.ErrValidation, errors.New("quantity must be positive"))
	case quantity < batch.MOQ:
		return model.LandedCost{}, errors.Join(model.ErrValidation,
			fmt.Errorf("quantity %d is below the minimum order quantity %d", quantity, batch.MOQ))
	}

	qty := decimal.NewFromInt(quantity)
	product := decimal.NewFromFloat(batch.UnitPriceUSD).Mul(qty)
	shipping := shippingPerUnit.Mul(qty)
	duties := product.Mul(dutyRate)
	insurance := product.Mul(insuranceRate)
	total := product.Add(shipping).Add(duties).Add(insurance)

	return model.LandedCost{
		BatchID:     batch.ID,
		Quantity:    quantity,
		Destination: dest,
		ProductCost: product.Round(2),
		Shipping:    shipping.Round(2),
		Duties:      duties.Round(2),
		Insurance:   insurance.Round(2),
		Total:       total.Round(2),
		PerUnit:     total.Div(qty).Round(2),
	}, nil
}
