package csvstore_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
	"github.com/jhoicas/gst-ledger/internal/infrastructure/csvstore"
)

const sample = `date,type,amount,gst_rate,gst_amount,description
2025-10-01,sale,1180,18,,mostrador
2025-10-02,Purchase,112,,12,proveedor
2025-11-01,sale,50,5,,noviembre
2025-10-03,sale,abc,,,monto roto
`

func TestReadEntries_ColumnasEnCualquierOrden(t *testing.T) {
	entries, err := csvstore.ReadEntries(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, "2025-10-01", entries[0].Date)
	assert.Equal(t, 1180.0, *entries[0].Amount)
	assert.Equal(t, 18.0, *entries[0].GSTRate)
	assert.Nil(t, entries[0].GSTAmount)
	assert.Equal(t, "purchase", entries[1].Type)
	assert.Equal(t, 12.0, *entries[1].GSTAmount)
	assert.Nil(t, entries[3].Amount, "monto no numérico queda ausente")
}

func TestReadEntries_SinColumnaObligatoria(t *testing.T) {
	_, err := csvstore.ReadEntries(strings.NewReader("date,type\n2025-10-01,sale\n"))
	assert.Error(t, err)
}

func TestReadEntries_Vacio(t *testing.T) {
	entries, err := csvstore.ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteEntries_IdaYVuelta(t *testing.T) {
	in := []entity.LedgerEntry{
		{ID: "x1", Date: "2025-10-01", Type: "sale", Amount: entity.Float(99.5), GSTRate: entity.Float(5), Description: "té, café"},
		{ID: "x2", Date: "2025-10-02", Type: "return", Amount: entity.Float(-118)},
	}
	var buf bytes.Buffer
	require.NoError(t, csvstore.WriteEntries(&buf, in))

	out, err := csvstore.ReadEntries(&buf)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "té, café", out[0].Description)
	assert.Equal(t, -118.0, *out[1].Amount)
	assert.Nil(t, out[1].GSTRate)
}

func TestStore_ListByPeriodYCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libro.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	store := csvstore.NewStore(path)
	ctx := context.Background()

	oct, err := store.ListByPeriod(ctx, "2025-10")
	require.NoError(t, err)
	assert.Len(t, oct, 3)

	e := entity.LedgerEntry{Date: "2025-10-20", Type: "receipt", Amount: entity.Float(10)}
	require.NoError(t, store.Create(ctx, &e))
	assert.NotEmpty(t, e.ID)

	oct, err = store.ListByPeriod(ctx, "2025-10")
	require.NoError(t, err)
	require.Len(t, oct, 4)
	assert.Equal(t, "receipt", oct[3].Type)
}

func TestStore_ArchivoInexistente(t *testing.T) {
	store := csvstore.NewStore(filepath.Join(t.TempDir(), "nuevo.csv"))
	ctx := context.Background()

	entries, err := store.ListByPeriod(ctx, "2025-10")
	require.NoError(t, err)
	assert.Empty(t, entries)

	e := entity.LedgerEntry{Date: "2025-10-20", Type: "sale", Amount: entity.Float(10)}
	require.NoError(t, store.Create(ctx, &e))
	entries, err = store.ListByPeriod(ctx, "2025-10")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_Latin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.csv")
	raw, err := charmap.ISO8859_1.NewEncoder().String("date,type,amount,description\n2025-10-01,sale,100,pequeño\n")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	entries, err := csvstore.NewStore(path, csvstore.WithCharset("ISO-8859-1")).ListByPeriod(context.Background(), "2025-10")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "pequeño", entries[0].Description)
}

func TestStore_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := csvstore.NewStore("no-importa.csv").ListByPeriod(ctx, "2025-10")
	assert.ErrorIs(t, err, context.Canceled)
}
