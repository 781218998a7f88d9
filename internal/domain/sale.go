package domain

// Sale representa uma transação de venda. ID é apenas informativo;
// Line é a linha de origem no arquivo de vendas.
type Sale struct {
	ID              int
	ProductID       int
	TeamID          int
	Quantity        int
	DiscountPercent float64
	Line            int
}
