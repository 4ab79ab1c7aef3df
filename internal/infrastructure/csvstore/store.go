package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
	"github.com/jhoicas/gst-ledger/internal/domain/gst"
	"github.com/jhoicas/gst-ledger/internal/domain/repository"
)

var _ repository.LedgerEntryRepository = (*Store)(nil)

// Store almacén de asientos respaldado por un archivo CSV. Cada lectura relee el
// archivo, así cada reporte trabaja sobre una foto consistente.
type Store struct {
	path   string
	latin1 bool
	mu     sync.Mutex
}

// Option configura el Store.
type Option func(*Store)

// WithCharset indica la codificación del archivo ("utf-8" por defecto, "iso-8859-1"/"latin1").
func WithCharset(charset string) Option {
	return func(s *Store) {
		switch strings.ToLower(charset) {
		case "iso-8859-1", "iso8859-1", "latin1":
			s.latin1 = true
		}
	}
}

// NewStore construye el almacén sobre path. El archivo puede no existir aún.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadAll lee todos los asientos del archivo.
func (s *Store) ReadAll(ctx context.Context) ([]entity.LedgerEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("abrir libro CSV: %w", err)
	}
	defer f.Close()

	return ReadEntries(s.reader(f))
}

// ListByPeriod asientos del período (YYYY-MM) en el orden del archivo.
func (s *Store) ListByPeriod(ctx context.Context, period string) ([]entity.LedgerEntry, error) {
	all, err := s.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []entity.LedgerEntry
	for _, e := range all {
		if gst.InPeriod(e.Date, period) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Create agrega un asiento al final del archivo respetando el orden de columnas
// existente (crea el archivo con encabezado si no existe).
func (s *Store) Create(ctx context.Context, e *entity.LedgerEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	columns, err := s.columns()
	if err != nil {
		return err
	}
	isNew := columns == nil
	if isNew {
		columns = strings.Split(Header, ",")
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("abrir libro CSV: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	var tw *transform.Writer
	if s.latin1 {
		tw = transform.NewWriter(f, charmap.ISO8859_1.NewEncoder())
		w = tw
	}
	cw := csv.NewWriter(w)
	if isNew {
		if err := cw.Write(columns); err != nil {
			return fmt.Errorf("escribir encabezado: %w", err)
		}
	}
	if err := cw.Write(recordFor(columns, *e)); err != nil {
		return fmt.Errorf("escribir asiento: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("escribir asiento: %w", err)
	}
	if tw != nil {
		return tw.Close()
	}
	return nil
}

// columns encabezado actual del archivo; nil si no existe o está vacío.
func (s *Store) columns() ([]string, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("abrir libro CSV: %w", err)
	}
	defer f.Close()

	header, err := csv.NewReader(s.reader(f)).Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer encabezado CSV: %w", err)
	}
	return header, nil
}

func (s *Store) reader(f io.Reader) io.Reader {
	if s.latin1 {
		return transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	return f
}
