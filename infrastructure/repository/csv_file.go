// Package repository contém os repositórios que leem as entradas CSV do relatório
package repository

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/vfg2006/sales-report/internal/domain"
)

// parseLineFunc recebe o número da linha (1-based) e a linha já aparada e não vazia
type parseLineFunc func(lineNumber int, line string) error

// readLines percorre o arquivo descartando o cabeçalho. Linhas que falham no
// parse viram diagnósticos e a leitura continua.
func readLines(fs afero.Fs, source, path string, parse parseLineFunc) []domain.Diagnostic {
	diagnostics := make([]domain.Diagnostic, 0)

	file, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Wrapf(domain.ErrFileNotFound, "%s", path)
		} else {
			err = errors.Wrapf(domain.ErrFileUnreadable, "%s: %v", path, err)
		}
		return append(diagnostics, domain.NewDiagnostic(source, 0, "", err))
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	lineNumber := 0
	for {
		raw, err := readLine(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			err = errors.Wrapf(domain.ErrFileUnreadable, "%s after line %d: %v", path, lineNumber, err)
			diagnostics = append(diagnostics, domain.NewDiagnostic(source, 0, "", err))
			break
		}

		lineNumber++
		if lineNumber == 1 {
			continue
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if err := parse(lineNumber, line); err != nil {
			diagnostics = append(diagnostics, domain.NewDiagnostic(source, lineNumber, raw, err))
		}
	}

	return diagnostics
}

// readLine lê uma linha terminada por \n, \r\n ou \r isolado, sem limite de tamanho.
// Retorna io.EOF apenas quando não há mais nenhum conteúdo.
func readLine(reader *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := reader.ReadByte()
		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				return sb.String(), nil
			}
			return sb.String(), err
		}

		switch b {
		case '\n':
			return sb.String(), nil
		case '\r':
			if next, err := reader.Peek(1); err == nil && next[0] == '\n' {
				_, _ = reader.ReadByte()
			}
			return sb.String(), nil
		}

		sb.WriteByte(b)
	}
}

func splitFields(line string, want int) ([]string, error) {
	fields := strings.Split(line, ",")
	if len(fields) != want {
		return nil, errors.Wrapf(domain.ErrFieldCount, "want %d, got %d", want, len(fields))
	}
	return fields, nil
}

func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.Wrapf(domain.ErrInvalidNumber, "%s %q", name, value)
	}
	return n, nil
}

func parseFloat(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errors.Wrapf(domain.ErrInvalidNumber, "%s %q", name, value)
	}
	return f, nil
}
