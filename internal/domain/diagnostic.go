package domain

import "github.com/pkg/errors"

// Erros que classificam uma linha ou arquivo ignorado
var (
	ErrFileNotFound   = errors.New("file not found")
	ErrFileUnreadable = errors.New("file unreadable")
	ErrFieldCount     = errors.New("unexpected number of fields")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrFullDiscount   = errors.New("discount must be lower than 100 percent")
	ErrUnitsOverflow  = errors.New("total units overflow")
)

type DiagnosticKind string

const (
	DiagnosticFileNotFound    DiagnosticKind = "FileNotFound"
	DiagnosticFileUnreadable  DiagnosticKind = "FileUnreadable"
	DiagnosticMalformedLine   DiagnosticKind = "MalformedLine"
	DiagnosticInvalidDiscount DiagnosticKind = "InvalidDiscount"
	DiagnosticUnitsOverflow   DiagnosticKind = "UnitsOverflow"
)

// Diagnostic registra uma linha ou arquivo que não pôde ser aproveitado.
// Line é 1-based e vale 0 quando o problema é o arquivo inteiro.
type Diagnostic struct {
	Source string         `json:"source"`
	Kind   DiagnosticKind `json:"kind"`
	Line   int            `json:"line,omitempty"`
	Raw    string         `json:"raw,omitempty"`
	Reason string         `json:"reason"`
	Err    error          `json:"-"`
}

// NewDiagnostic cria um Diagnostic classificando o erro pela sua causa
func NewDiagnostic(source string, line int, raw string, err error) Diagnostic {
	return Diagnostic{
		Source: source,
		Kind:   KindOf(err),
		Line:   line,
		Raw:    raw,
		Reason: err.Error(),
		Err:    err,
	}
}

// KindOf mapeia um erro para o tipo de diagnóstico correspondente
func KindOf(err error) DiagnosticKind {
	switch {
	case errors.Is(err, ErrFileNotFound):
		return DiagnosticFileNotFound
	case errors.Is(err, ErrFileUnreadable):
		return DiagnosticFileUnreadable
	case errors.Is(err, ErrFullDiscount):
		return DiagnosticInvalidDiscount
	case errors.Is(err, ErrUnitsOverflow):
		return DiagnosticUnitsOverflow
	default:
		return DiagnosticMalformedLine
	}
}
