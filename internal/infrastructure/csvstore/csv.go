// Package csvstore implementa el almacén de asientos sobre un archivo CSV
// (exportaciones de hojas de cálculo o del libro de caja).
package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
)

// Header columnas del libro en CSV. ReadEntries acepta cualquier orden siempre
// que existan date, amount y type.
const Header = "id,date,description,amount,type,gst_rate,gst_amount"

var requiredColumns = []string{"date", "amount", "type"}

// ReadEntries lee asientos desde un CSV con encabezado.
// Celdas numéricas vacías o mal formadas quedan como ausentes (nil): el asiento
// se conserva y los reportes lo descartarán por inválido.
func ReadEntries(r io.Reader) ([]entity.LedgerEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer encabezado CSV: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[normalizeColumn(h)] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("CSV sin columna %q", c)
		}
	}

	var entries []entity.LedgerEntry
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w", line, err)
		}
		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		entries = append(entries, entity.LedgerEntry{
			ID:          cell("id"),
			Date:        cell("date"),
			Description: cell("description"),
			Amount:      parseOptional(cell("amount")),
			Type:        strings.ToLower(cell("type")),
			GSTRate:     parseOptional(cell("gst_rate")),
			GSTAmount:   parseOptional(cell("gst_amount")),
		})
	}
	return entries, nil
}

// WriteEntries escribe los asientos con encabezado.
func WriteEntries(w io.Writer, entries []entity.LedgerEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("escribir encabezado: %w", err)
	}
	for i, e := range entries {
		if err := cw.Write(record(e)); err != nil {
			return fmt.Errorf("escribir fila %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func record(e entity.LedgerEntry) []string {
	return recordFor(strings.Split(Header, ","), e)
}

// recordFor serializa e siguiendo el orden de columnas dado; columnas desconocidas quedan vacías.
func recordFor(columns []string, e entity.LedgerEntry) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		switch normalizeColumn(c) {
		case "id":
			out[i] = e.ID
		case "date":
			out[i] = e.Date
		case "description":
			out[i] = e.Description
		case "amount":
			out[i] = formatOptional(e.Amount)
		case "type":
			out[i] = e.Type
		case "gst_rate":
			out[i] = formatOptional(e.GSTRate)
		case "gst_amount":
			out[i] = formatOptional(e.GSTAmount)
		}
	}
	return out
}

func normalizeColumn(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

func parseOptional(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func formatOptional(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
