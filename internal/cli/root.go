// Package cli define o comando de linha de comando que gera os relatórios de vendas
package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-report/infrastructure/report"
	"github.com/vfg2006/sales-report/infrastructure/repository"
	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/internal/usecases/reporting"
	"github.com/vfg2006/sales-report/pkg/log"
)

// Options reúne os caminhos recebidos pelas flags
type Options struct {
	TeamPath          string
	ProductPath       string
	SalesPath         string
	TeamReportPath    string
	ProductReportPath string
}

// ServiceFactory monta o serviço de relatórios a partir das opções
type ServiceFactory func(opts Options) reporting.ReportingService

// NewRootCommand cria o comando usando o sistema de arquivos do SO
func NewRootCommand(cfg *config.Config) *cobra.Command {
	return newRootCommand(cfg, NewServiceFactory(afero.NewOsFs()))
}

// NewServiceFactory liga os repositórios e o writer ao mesmo sistema de arquivos
func NewServiceFactory(fs afero.Fs) ServiceFactory {
	return func(opts Options) reporting.ReportingService {
		return reporting.NewService(
			repository.NewTeamRepository(fs, opts.TeamPath),
			repository.NewProductRepository(fs, opts.ProductPath),
			repository.NewSaleRepository(fs, opts.SalesPath),
			report.NewCSVWriter(fs),
		)
	}
}

func newRootCommand(cfg *config.Config, newService ServiceFactory) *cobra.Command {
	opts := Options{}

	cmd := &cobra.Command{
		Use:   "sales-report",
		Short: "Generate sales reports from input CSV files",
		Long: `Generate revenue reports by team and by product.

Reads a team map, a product master and a sales file, joins them in memory
and writes two CSV reports sorted by gross revenue (descending).

Malformed lines and missing input files are logged and skipped; the reports
are always written.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(cmd, cfg, newService(opts), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.TeamPath, "team", "t", "", "Team map CSV file")
	flags.StringVarP(&opts.ProductPath, "product", "p", "", "Product master CSV file")
	flags.StringVarP(&opts.SalesPath, "sales", "s", "", "Sales CSV file")
	flags.StringVar(&opts.TeamReportPath, "team-report", "", "Output team report CSV file")
	flags.StringVar(&opts.ProductReportPath, "product-report", "", "Output product report CSV file")

	for _, name := range []string{"team", "product", "sales", "team-report", "product-report"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, service reporting.ReportingService, opts Options) error {
	ctx, _ := log.WithCorrelationID(cmd.Context())
	logger := log.ForContext(ctx)

	logger.WithFields(log.Fields{
		"team":           opts.TeamPath,
		"product":        opts.ProductPath,
		"sales":          opts.SalesPath,
		"team_report":    opts.TeamReportPath,
		"product_report": opts.ProductReportPath,
	}).Debug("Iniciando geração dos relatórios")

	result, err := service.Generate(ctx, reporting.Request{
		TeamReportPath:    opts.TeamReportPath,
		ProductReportPath: opts.ProductReportPath,
		DiagnosticsPath:   cfg.Report.DiagnosticsPath,
	})
	if result != nil {
		logDiagnostics(logger, result.Diagnostics)
	}
	// O erro é registrado uma única vez por quem chama Execute
	return err
}

// logDiagnostics reporta cada linha ou arquivo ignorado, sem interromper a execução
func logDiagnostics(logger log.Logger, diagnostics []domain.Diagnostic) {
	for _, d := range diagnostics {
		entry := logger.WithFields(log.Fields{
			"source": d.Source,
			"kind":   d.Kind,
		})
		if d.Line > 0 {
			entry = entry.WithFields(log.Fields{"line": d.Line, "raw": d.Raw})
		}
		entry.Warn(d.Reason)
	}
}
