package reporting

import (
	"fmt"

	"github.com/pkg/errors"
)

// Erros específicos para a geração de relatórios
var (
	ErrWriteTeamReport    = errors.New("error writing team report")
	ErrWriteProductReport = errors.New("error writing product report")
	ErrWriteDiagnostics   = errors.New("error writing diagnostics")
)

// ReportError é um erro com contexto adicional sobre o destino que falhou
type ReportError struct {
	Err     error  // Erro base
	Path    string // Arquivo de destino
	Details string // Causa original, quando houver
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s %s: %s", e.Err.Error(), e.Path, e.Details)
	}
	return fmt.Sprintf("%s %s", e.Err.Error(), e.Path)
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo ReportError a partir da causa original
func NewReportError(err error, path string, cause error) *ReportError {
	reportErr := &ReportError{
		Err:  err,
		Path: path,
	}
	if cause != nil {
		reportErr.Details = cause.Error()
	}
	return reportErr
}
