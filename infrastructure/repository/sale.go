package repository

import (
	"github.com/spf13/afero"
	"github.com/vfg2006/sales-report/internal/domain"
)

const (
	saleSource = "sales"
	saleFields = 5
)

//go:generate mockgen -source=sale.go -destination=mocks/sale.go -package=mocks
type SaleRepository interface {
	LoadSales() ([]domain.Sale, []domain.Diagnostic)
}

type saleRepository struct {
	fs   afero.Fs
	path string
}

func NewSaleRepository(fs afero.Fs, path string) SaleRepository {
	return &saleRepository{
		fs:   fs,
		path: path,
	}
}

// LoadSales lê as vendas no formato SaleId,ProductId,TeamId,Quantity,Discount, na ordem do arquivo
func (r *saleRepository) LoadSales() ([]domain.Sale, []domain.Diagnostic) {
	sales := make([]domain.Sale, 0)

	diagnostics := readLines(r.fs, saleSource, r.path, func(lineNumber int, line string) error {
		sale, err := r.parseSale(line)
		if err != nil {
			return err
		}
		sale.Line = lineNumber
		sales = append(sales, sale)
		return nil
	})

	return sales, diagnostics
}

func (r *saleRepository) parseSale(line string) (domain.Sale, error) {
	fields, err := splitFields(line, saleFields)
	if err != nil {
		return domain.Sale{}, err
	}

	names := [...]string{"SaleId", "ProductId", "TeamId", "Quantity"}
	ints := make([]int, len(names))
	for i, name := range names {
		ints[i], err = parseInt(name, fields[i])
		if err != nil {
			return domain.Sale{}, err
		}
	}

	discount, err := parseFloat("Discount", fields[4])
	if err != nil {
		return domain.Sale{}, err
	}

	return domain.Sale{
		ID:              ints[0],
		ProductID:       ints[1],
		TeamID:          ints[2],
		Quantity:        ints[3],
		DiscountPercent: discount,
	}, nil
}
