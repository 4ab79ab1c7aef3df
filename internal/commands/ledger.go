package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gst-ledger/internal/application/dto"
	"github.com/jhoicas/gst-ledger/internal/application/ledger"
	"github.com/jhoicas/gst-ledger/internal/domain"
	"github.com/jhoicas/gst-ledger/internal/infrastructure/postgres"
)

func newListCommand(opts *options) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Asientos del período, los más recientes primero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			items, err := ledger.NewUseCase(store).List(cmd.Context(), period)
			if errors.Is(err, domain.ErrInvalidInput) {
				return fmt.Errorf("período inválido %q: use YYYY-MM", period)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd, items)
		},
	}
	cmd.Flags().StringVar(&period, "period", "", "período YYYY-MM (requerido)")
	_ = cmd.MarkFlagRequired("period")
	return cmd
}

func newAddCommand(opts *options) *cobra.Command {
	var (
		in        dto.CreateLedgerEntryRequest
		amount    float64
		gstRate   float64
		gstAmount float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Registrar un asiento en el libro",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			in.Amount = &amount
			if cmd.Flags().Changed("gst-rate") {
				in.GSTRate = &gstRate
			}
			if cmd.Flags().Changed("gst-amount") {
				in.GSTAmount = &gstAmount
			}
			out, err := ledger.NewUseCase(store).Create(cmd.Context(), in)
			if errors.Is(err, domain.ErrInvalidInput) {
				return errors.New("asiento inválido: revise fecha, monto, tipo y tarifa")
			}
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
	cmd.Flags().StringVar(&in.Date, "date", "", "fecha YYYY-MM-DD (requerido)")
	cmd.Flags().StringVar(&in.Description, "description", "", "descripción")
	cmd.Flags().Float64Var(&amount, "amount", 0, "monto bruto, impuesto incluido; negativo para devoluciones (requerido)")
	cmd.Flags().StringVar(&in.Type, "type", "", "sale | purchase | expense | receipt | return (requerido)")
	cmd.Flags().Float64Var(&gstRate, "gst-rate", 0, "tarifa: 0, 5, 12, 18 o 28")
	cmd.Flags().Float64Var(&gstAmount, "gst-amount", 0, "impuesto explícito")
	for _, name := range []string{"date", "amount", "type"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

// newImportCommand carga el libro CSV completo en PostgreSQL en una sola transacción.
func newImportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Importar el libro CSV a PostgreSQL (todo o nada)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			entries, err := store.ReadAll(cmd.Context())
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(cmd.Context(), opts.cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()

			res, err := ledger.NewImportUseCase(postgres.NewTxRunner(pool)).Import(cmd.Context(), entries)
			if err != nil {
				return fmt.Errorf("importando: %w", err)
			}
			opts.log.Info().Int("imported", res.Imported).Int("skipped", res.Skipped).Msg("libro importado")
			return printJSON(cmd, res)
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
