package domain

// TeamAggregate acumula a receita bruta de um time
type TeamAggregate struct {
	TeamID       int
	TeamName     string
	GrossRevenue float64
}

// ProductAggregate acumula receita bruta, unidades e custo de desconto de um produto
type ProductAggregate struct {
	ProductID    int
	Name         string
	GrossRevenue float64
	TotalUnits   int
	DiscountCost float64
}
