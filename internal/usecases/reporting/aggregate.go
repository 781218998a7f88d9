package reporting

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report/internal/domain"
)

const aggregateSource = "sales"

// Aggregation é o resultado da junção das vendas com times e produtos
type Aggregation struct {
	Teams       []domain.TeamAggregate
	Products    []domain.ProductAggregate
	Diagnostics []domain.Diagnostic
}

// teamAccumulator soma a receita bruta por time, preservando a ordem da primeira contribuição
type teamAccumulator struct {
	index  map[int]int
	totals []domain.TeamAggregate
}

func newTeamAccumulator() *teamAccumulator {
	return &teamAccumulator{index: make(map[int]int)}
}

func (a *teamAccumulator) add(team domain.Team, revenue SaleRevenue) {
	i, exists := a.index[team.ID]
	if !exists {
		i = len(a.totals)
		a.index[team.ID] = i
		a.totals = append(a.totals, domain.TeamAggregate{TeamID: team.ID, TeamName: team.Name})
	}
	a.totals[i].GrossRevenue += revenue.GrossRevenue
}

// productAccumulator soma receita bruta, unidades e custo de desconto por produto
type productAccumulator struct {
	index  map[int]int
	totals []domain.ProductAggregate
}

func newProductAccumulator() *productAccumulator {
	return &productAccumulator{index: make(map[int]int)}
}

func (a *productAccumulator) units(productID int) int {
	i, exists := a.index[productID]
	if !exists {
		return 0
	}
	return a.totals[i].TotalUnits
}

func (a *productAccumulator) add(product domain.Product, revenue SaleRevenue) {
	i, exists := a.index[product.ID]
	if !exists {
		i = len(a.totals)
		a.index[product.ID] = i
		a.totals = append(a.totals, domain.ProductAggregate{ProductID: product.ID, Name: product.Name})
	}
	a.totals[i].GrossRevenue += revenue.GrossRevenue
	a.totals[i].TotalUnits += revenue.Units
	a.totals[i].DiscountCost += revenue.DiscountCost
}

// Aggregate junta as vendas com os times e produtos e acumula os totais de cada relatório.
// Vendas com time ou produto desconhecido são descartadas sem diagnóstico.
func Aggregate(teams domain.TeamDirectory, products domain.ProductCatalog, sales []domain.Sale) Aggregation {
	byTeam := newTeamAccumulator()
	byProduct := newProductAccumulator()
	diagnostics := make([]domain.Diagnostic, 0)

	for _, sale := range sales {
		team, teamExists := teams.Get(sale.TeamID)
		product, productExists := products.Get(sale.ProductID)
		if !teamExists || !productExists {
			continue
		}

		revenue, err := CalculateRevenue(product, sale)
		if err != nil {
			diagnostics = append(diagnostics, domain.NewDiagnostic(aggregateSource, sale.Line, "", err))
			continue
		}

		// A venda é descartada dos dois relatórios para manter os totais consistentes
		if _, ok := addUnits(byProduct.units(product.ID), revenue.Units); !ok {
			err := errors.Wrapf(domain.ErrUnitsOverflow, "sale %d: product %d total", sale.ID, product.ID)
			diagnostics = append(diagnostics, domain.NewDiagnostic(aggregateSource, sale.Line, "", err))
			continue
		}

		byTeam.add(team, revenue)
		byProduct.add(product, revenue)
	}

	return Aggregation{
		Teams:       SortTeams(byTeam.totals),
		Products:    SortProducts(byProduct.totals),
		Diagnostics: diagnostics,
	}
}

// SortTeams ordena por receita bruta decrescente. Empates mantêm a ordem de entrada.
func SortTeams(teams []domain.TeamAggregate) []domain.TeamAggregate {
	if teams == nil {
		return []domain.TeamAggregate{}
	}

	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].GrossRevenue > teams[j].GrossRevenue
	})

	return teams
}

// SortProducts ordena por receita bruta decrescente. Empates mantêm a ordem de entrada.
func SortProducts(products []domain.ProductAggregate) []domain.ProductAggregate {
	if products == nil {
		return []domain.ProductAggregate{}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].GrossRevenue > products[j].GrossRevenue
	})

	return products
}
