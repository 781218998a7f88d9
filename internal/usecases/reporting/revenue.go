package reporting

import (
	"math"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report/internal/domain"
)

// SaleRevenue reúne os valores calculados para uma única venda
type SaleRevenue struct {
	NetRevenue   float64
	GrossRevenue float64
	DiscountCost float64
	Units        int
}

// CalculateRevenue aplica a fórmula de receita bruta:
//
//	net   = unitPrice * quantity * lotSize
//	gross = net / (1 - discount/100)
//	cost  = net * (discount/100)
//
// Descontos de 100% ou mais (ou NaN) não têm receita bruta definida e retornam ErrFullDiscount.
// Quantidade * lote que não cabe em int retorna ErrUnitsOverflow.
func CalculateRevenue(product domain.Product, sale domain.Sale) (SaleRevenue, error) {
	if !(sale.DiscountPercent < 100) {
		return SaleRevenue{}, errors.Wrapf(domain.ErrFullDiscount, "sale %d has discount %v", sale.ID, sale.DiscountPercent)
	}

	units, ok := multiplyUnits(sale.Quantity, product.LotSize)
	if !ok {
		return SaleRevenue{}, errors.Wrapf(domain.ErrUnitsOverflow, "sale %d: %d * %d", sale.ID, sale.Quantity, product.LotSize)
	}

	discount := sale.DiscountPercent / 100.0
	net := product.UnitPrice * float64(sale.Quantity) * float64(product.LotSize)

	return SaleRevenue{
		NetRevenue:   net,
		GrossRevenue: net / (1 - discount),
		DiscountCost: net * discount,
		Units:        units,
	}, nil
}

func multiplyUnits(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}

	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

func addUnits(a, b int) (int, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}
