// Package commands implementa gstctl: reportes y mantenimiento del libro de
// asientos desde la línea de comandos, sobre el archivo CSV del libro.
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gst-ledger/internal/application/reports"
	"github.com/jhoicas/gst-ledger/internal/buildinfo"
	"github.com/jhoicas/gst-ledger/internal/infrastructure/csvstore"
	"github.com/jhoicas/gst-ledger/pkg/config"
	"github.com/jhoicas/gst-ledger/pkg/logger"
)

var errNoLedger = errors.New("no se indicó el libro: use --ledger o LEDGER_CSV_PATH")

// options estado compartido por los subcomandos; se completa en PersistentPreRunE.
type options struct {
	ledgerPath string
	charset    string

	cfg *config.Config
	log *logger.Logger
}

// NewRootCommand crea el comando raíz con todos los subcomandos registrados.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "gstctl",
		Short:   "Reportes de impuesto sobre el libro de asientos",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.ledgerPath, "ledger", "", "ruta del libro CSV (default: LEDGER_CSV_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.charset, "charset", "", "codificación del libro: utf-8 | iso-8859-1 (default: LEDGER_CSV_CHARSET)")

	rootCmd.AddCommand(
		newSalesRegisterCommand(opts),
		newSummaryCommand(opts),
		newProfitAndLossCommand(opts),
		newListCommand(opts),
		newAddCommand(opts),
		newImportCommand(opts),
	)

	return rootCmd
}

func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargando configuración: %w", err)
	}
	o.cfg = cfg
	if o.ledgerPath == "" {
		o.ledgerPath = cfg.Store.LedgerCSVPath
	}
	if o.charset == "" {
		o.charset = cfg.Store.LedgerCSVCharset
	}
	// Los logs van a stderr; stdout queda para el reporte.
	o.log = logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.Log.Level,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

func (o *options) store() (*csvstore.Store, error) {
	if o.ledgerPath == "" {
		return nil, errNoLedger
	}
	return csvstore.NewStore(o.ledgerPath, csvstore.WithCharset(o.charset)), nil
}

func (o *options) reports() (*reports.UseCase, error) {
	store, err := o.store()
	if err != nil {
		return nil, err
	}
	source := reports.NewRepositorySource(store, o.log.Component("entry_source"))
	return reports.NewUseCase(source, o.cfg.GST.TaxConfig(), o.log.Component("reports")), nil
}
