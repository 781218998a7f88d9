package reporting

import (
	"context"

	"github.com/vfg2006/sales-report/infrastructure/repository"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/log"
	"github.com/vfg2006/sales-report/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// ReportWriter grava os relatórios agregados e, opcionalmente, os diagnósticos da execução
type ReportWriter interface {
	WriteTeamReport(path string, teams []domain.TeamAggregate) error
	WriteProductReport(path string, products []domain.ProductAggregate) error
	WriteDiagnostics(path string, diagnostics []domain.Diagnostic) error
}

type ReportingService interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

// Request define os destinos de uma execução. DiagnosticsPath vazio não grava diagnósticos.
type Request struct {
	TeamReportPath    string
	ProductReportPath string
	DiagnosticsPath   string
}

type Result struct {
	Teams       []domain.TeamAggregate
	Products    []domain.ProductAggregate
	Diagnostics []domain.Diagnostic
}

type Service struct {
	teamRepo    repository.TeamRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	writer      ReportWriter
}

func NewService(
	teamRepo repository.TeamRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	writer ReportWriter,
) ReportingService {
	return &Service{
		teamRepo:    teamRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		writer:      writer,
	}
}

// Generate carrega as três entradas, agrega as vendas e grava os dois relatórios.
// Problemas nas entradas viram diagnósticos; apenas falhas de gravação retornam erro.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	logger := log.ForContext(ctx)

	teams, diagnostics := s.teamRepo.LoadTeams()
	products, productDiagnostics := s.productRepo.LoadProducts()
	sales, saleDiagnostics := s.saleRepo.LoadSales()

	diagnostics = append(diagnostics, productDiagnostics...)
	diagnostics = append(diagnostics, saleDiagnostics...)

	logger.WithFields(log.Fields{
		"teams":    len(teams),
		"products": len(products),
		"sales":    len(sales),
	}).Debug("Entradas carregadas")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	aggregation := Aggregate(teams, products, sales)
	diagnostics = append(diagnostics, aggregation.Diagnostics...)

	result := &Result{
		Teams:       aggregation.Teams,
		Products:    aggregation.Products,
		Diagnostics: diagnostics,
	}

	if err := s.writer.WriteTeamReport(req.TeamReportPath, result.Teams); err != nil {
		return result, NewReportError(ErrWriteTeamReport, req.TeamReportPath, err)
	}

	if err := s.writer.WriteProductReport(req.ProductReportPath, result.Products); err != nil {
		return result, NewReportError(ErrWriteProductReport, req.ProductReportPath, err)
	}

	if req.DiagnosticsPath != "" {
		if err := s.writer.WriteDiagnostics(req.DiagnosticsPath, result.Diagnostics); err != nil {
			return result, NewReportError(ErrWriteDiagnostics, req.DiagnosticsPath, err)
		}
	}

	logger.WithFields(log.Fields{
		"team_rows":     len(result.Teams),
		"product_rows":  len(result.Products),
		"gross_revenue": utils.RoundWithTwoDecimalPlace(TotalGrossRevenue(result.Teams)),
		"diagnostics":   len(result.Diagnostics),
	}).Info("Relatórios gerados")

	return result, nil
}

// TotalGrossRevenue soma a receita bruta de todos os times
func TotalGrossRevenue(teams []domain.TeamAggregate) float64 {
	var total float64
	for _, team := range teams {
		total += team.GrossRevenue
	}
	return total
}
