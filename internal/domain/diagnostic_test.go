package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewDiagnostic(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want DiagnosticKind
	}{
		{name: "arquivo inexistente", err: errors.Wrap(ErrFileNotFound, "teams.csv"), want: DiagnosticFileNotFound},
		{name: "arquivo ilegível", err: errors.Wrap(ErrFileUnreadable, "permission denied"), want: DiagnosticFileUnreadable},
		{name: "número inválido", err: errors.Wrapf(ErrInvalidNumber, "id %q", "abc"), want: DiagnosticMalformedLine},
		{name: "quantidade de campos", err: errors.Wrap(ErrFieldCount, "want 4, got 3"), want: DiagnosticMalformedLine},
		{name: "desconto total", err: errors.Wrap(ErrFullDiscount, "sale 7"), want: DiagnosticInvalidDiscount},
		{name: "estouro de unidades", err: errors.Wrap(ErrUnitsOverflow, "sale 8"), want: DiagnosticUnitsOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDiagnostic("sales", 3, "raw", tt.err)

			assert.Equal(t, tt.want, d.Kind)
			assert.Equal(t, "sales", d.Source)
			assert.Equal(t, 3, d.Line)
			assert.Equal(t, "raw", d.Raw)
			assert.Equal(t, tt.err.Error(), d.Reason)
			assert.ErrorIs(t, d.Err, errors.Cause(tt.err))
		})
	}
}
