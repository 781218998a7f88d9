// Package report grava os relatórios agregados em CSV e os diagnósticos em JSON
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/utils"
)

const (
	teamReportHeader    = "Team,GrossRevenue"
	productReportHeader = "Name,GrossRevenue,TotalUnits,DiscountCost"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CSVWriter grava os relatórios sem aspas nem escape: nomes com vírgula quebram as colunas.
type CSVWriter struct {
	fs afero.Fs
}

func NewCSVWriter(fs afero.Fs) *CSVWriter {
	return &CSVWriter{fs: fs}
}

func (w *CSVWriter) WriteTeamReport(path string, teams []domain.TeamAggregate) error {
	return w.writeAtomically(path, func(out *bufio.Writer) error {
		if _, err := fmt.Fprintln(out, teamReportHeader); err != nil {
			return err
		}
		for _, team := range teams {
			if _, err := fmt.Fprintf(out, "%s,%s\n", team.TeamName, utils.FormatAmount(team.GrossRevenue)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (w *CSVWriter) WriteProductReport(path string, products []domain.ProductAggregate) error {
	return w.writeAtomically(path, func(out *bufio.Writer) error {
		if _, err := fmt.Fprintln(out, productReportHeader); err != nil {
			return err
		}
		for _, product := range products {
			_, err := fmt.Fprintf(out, "%s,%s,%s,%s\n",
				product.Name,
				utils.FormatAmount(product.GrossRevenue),
				strconv.Itoa(product.TotalUnits),
				utils.FormatAmount(product.DiscountCost),
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteDiagnostics grava a lista de diagnósticos como JSON indentado
func (w *CSVWriter) WriteDiagnostics(path string, diagnostics []domain.Diagnostic) error {
	if diagnostics == nil {
		diagnostics = []domain.Diagnostic{}
	}

	data, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal diagnostics")
	}

	return w.writeAtomically(path, func(out *bufio.Writer) error {
		if _, err := out.Write(data); err != nil {
			return err
		}
		return out.WriteByte('\n')
	})
}

// writeAtomically grava em um arquivo temporário no mesmo diretório e renomeia sobre o destino,
// de modo que o destino nunca fica pela metade.
func (w *CSVWriter) writeAtomically(path string, write func(out *bufio.Writer) error) (err error) {
	suffix, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "generate temp file id")
	}

	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+suffix+".tmp")

	file, err := w.fs.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "create %s", tmpPath)
	}

	defer func() {
		if err != nil {
			_ = w.fs.Remove(tmpPath)
		}
	}()

	out := bufio.NewWriter(file)
	if err = write(out); err != nil {
		closeQuietly(file)
		return errors.Wrapf(err, "write %s", path)
	}

	if err = out.Flush(); err != nil {
		closeQuietly(file)
		return errors.Wrapf(err, "flush %s", path)
	}

	if err = file.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}

	if err = w.fs.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "rename to %s", path)
	}

	return nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
