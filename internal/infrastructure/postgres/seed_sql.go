package postgres

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
)

// WriteSeedSQL escribe un script idempotente con un INSERT por asiento.
// Los asientos deben traer ID; los conflictos por id se ignoran.
func WriteSeedSQL(w io.Writer, entries []entity.LedgerEntry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "-- Generado por seed_ledger: %d asientos\n", len(entries))
	bw.WriteString("BEGIN;\n\n")
	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("seed: asiento sin id (%s %s)", e.Date, e.Description)
		}
		fmt.Fprintf(bw,
			"INSERT INTO ledger_entries (id, date, description, amount, type, gst_rate, gst_amount, created_at) "+
				"VALUES (%s, %s, %s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			sqlString(e.ID), sqlString(e.Date), sqlString(e.Description), sqlNumber(e.Amount),
			sqlString(e.Type), sqlNumber(e.GSTRate), sqlNumber(e.GSTAmount),
			sqlString(e.CreatedAt.UTC().Format("2006-01-02 15:04:05.000000Z07:00")),
		)
	}
	bw.WriteString("\nCOMMIT;\n")
	return bw.Flush()
}

func sqlString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func sqlNumber(p *float64) string {
	d := nullDecimal(p)
	if !d.Valid {
		return "NULL"
	}
	return d.Decimal.String()
}
