package repository

import (
	"github.com/spf13/afero"
	"github.com/vfg2006/sales-report/internal/domain"
)

const (
	productSource = "product"
	productFields = 4
)

//go:generate mockgen -source=product.go -destination=mocks/product.go -package=mocks
type ProductRepository interface {
	LoadProducts() (domain.ProductCatalog, []domain.Diagnostic)
}

type productRepository struct {
	fs   afero.Fs
	path string
}

func NewProductRepository(fs afero.Fs, path string) ProductRepository {
	return &productRepository{
		fs:   fs,
		path: path,
	}
}

// LoadProducts lê o catálogo no formato ProductId,Name,Price,LotSize
func (r *productRepository) LoadProducts() (domain.ProductCatalog, []domain.Diagnostic) {
	products := make(domain.ProductCatalog)

	diagnostics := readLines(r.fs, productSource, r.path, func(_ int, line string) error {
		product, err := r.parseProduct(line)
		if err != nil {
			return err
		}
		products[product.ID] = product
		return nil
	})

	return products, diagnostics
}

func (r *productRepository) parseProduct(line string) (domain.Product, error) {
	fields, err := splitFields(line, productFields)
	if err != nil {
		return domain.Product{}, err
	}

	id, err := parseInt("ProductId", fields[0])
	if err != nil {
		return domain.Product{}, err
	}

	price, err := parseFloat("Price", fields[2])
	if err != nil {
		return domain.Product{}, err
	}

	lotSize, err := parseInt("LotSize", fields[3])
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{
		ID:        id,
		Name:      fields[1],
		UnitPrice: price,
		LotSize:   lotSize,
	}, nil
}
