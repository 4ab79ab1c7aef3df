// seed_ledger genera un script SQL para poblar ledger_entries a partir de un
// libro de asientos en CSV (columnas: date, description, amount, type, gst_rate, gst_amount).
//
// Uso: go run ./cmd/seed_ledger [ruta/libro.csv] [iso-8859-1]
// Por defecto busca ledger.csv en el directorio actual, en UTF-8.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_ledger.sql
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
	"github.com/jhoicas/gst-ledger/internal/domain/gst"
	"github.com/jhoicas/gst-ledger/internal/infrastructure/csvstore"
	"github.com/jhoicas/gst-ledger/internal/infrastructure/postgres"
)

// seedNamespace ids estables: volver a correr el seed no duplica filas.
var seedNamespace = uuid.MustParse("6f1c2b4e-9a57-4d1e-8f0a-3c2d9b7e5a10")

func main() {
	csvPath := "ledger.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	charset := "utf-8"
	if len(os.Args) > 2 {
		charset = os.Args[2]
	}

	if _, err := os.Stat(csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	entries, err := csvstore.NewStore(csvPath, csvstore.WithCharset(charset)).ReadAll(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	base := time.Now().UTC()
	valid := make([]entity.LedgerEntry, 0, len(entries))
	skipped := 0
	for i, e := range entries {
		if !gst.IsValidEntry(e) {
			skipped++
			continue
		}
		if e.ID == "" {
			e.ID = uuid.NewSHA1(seedNamespace, []byte(strconv.Itoa(i)+"|"+e.Date+"|"+e.Description+"|"+e.Type)).String()
		}
		// conserva el orden del archivo
		e.CreatedAt = base.Add(time.Duration(i) * time.Microsecond)
		valid = append(valid, e)
	}

	outPath := filepath.Join("internal", "infrastructure", "postgres", "migrations", "002_seed_ledger.sql")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := postgres.WriteSeedSQL(out, valid); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Escrito %s: %d asientos, %d omitidos por inválidos\n", outPath, len(valid), skipped)
}
