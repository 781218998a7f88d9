package domain

// Product representa uma linha do catálogo de produtos
type Product struct {
	ID        int
	Name      string
	UnitPrice float64
	LotSize   int
}

// ProductCatalog indexa os produtos pelo ID
type ProductCatalog map[int]Product

func (c ProductCatalog) Get(id int) (Product, bool) {
	product, exists := c[id]
	return product, exists
}
