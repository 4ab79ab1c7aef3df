package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gst-ledger/internal/domain/gst"
	"github.com/jhoicas/gst-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/gst-ledger/internal/infrastructure/xmlexport"
)

// reportFlags flags comunes de los comandos de reporte.
type reportFlags struct {
	period string
	format string
	output string
}

func (f *reportFlags) register(cmd *cobra.Command, formats string) {
	cmd.Flags().StringVar(&f.period, "period", "", "período YYYY-MM (requerido)")
	_ = cmd.MarkFlagRequired("period")
	cmd.Flags().StringVar(&f.format, "format", "json", formats)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "archivo de salida (default: stdout)")
}

func newSalesRegisterCommand(opts *options) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "sales-register",
		Short: "Libro de ventas del período (GSTR-1)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := opts.reports()
			if err != nil {
				return err
			}
			reg, err := uc.GenerateSalesRegister(cmd.Context(), flags.period)
			if err != nil {
				return err
			}
			return writeReport(cmd, opts, flags, reg, func(ctx context.Context, g documentGenerator) ([]byte, error) {
				return g.SalesRegisterDocument(ctx, *reg)
			})
		},
	}
	flags.register(cmd, "json | pdf | xml")
	return cmd
}

func newSummaryCommand(opts *options) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Declaración resumen del período (GSTR-3B)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := opts.reports()
			if err != nil {
				return err
			}
			sr, err := uc.GenerateSummaryReturn(cmd.Context(), flags.period)
			if err != nil {
				return err
			}
			return writeReport(cmd, opts, flags, sr, func(ctx context.Context, g documentGenerator) ([]byte, error) {
				return g.SummaryReturnDocument(ctx, *sr)
			})
		},
	}
	flags.register(cmd, "json | pdf | xml")
	return cmd
}

func newProfitAndLossCommand(opts *options) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "pnl",
		Short: "Estado de resultados del período",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := opts.reports()
			if err != nil {
				return err
			}
			pl, err := uc.GenerateProfitAndLoss(cmd.Context(), flags.period)
			if err != nil {
				return err
			}
			return writeReport(cmd, opts, flags, pl, nil)
		},
	}
	flags.register(cmd, "json")
	return cmd
}

type documentGenerator interface {
	SalesRegisterDocument(ctx context.Context, reg gst.SalesRegister) ([]byte, error)
	SummaryReturnDocument(ctx context.Context, sr gst.SummaryReturn) ([]byte, error)
}

// writeReport escribe v como JSON o, para pdf/xml, el documento que produce render.
// render nil significa que el reporte solo existe en JSON.
func writeReport(
	cmd *cobra.Command,
	opts *options,
	flags reportFlags,
	v any,
	render func(context.Context, documentGenerator) ([]byte, error),
) error {
	var gen documentGenerator
	switch strings.ToLower(flags.format) {
	case "json", "":
	case "pdf":
		gen = pdf.NewMarotoReportGenerator(opts.cfg.App.Name)
	case "xml":
		gen = xmlexport.NewBuilder(2)
	default:
		return fmt.Errorf("formato no soportado: %s", flags.format)
	}
	if gen != nil && render == nil {
		return fmt.Errorf("formato no soportado para este reporte: %s", flags.format)
	}

	var out io.Writer = cmd.OutOrStdout()
	if flags.output != "" {
		f, err := os.Create(flags.output)
		if err != nil {
			return fmt.Errorf("creando %s: %w", flags.output, err)
		}
		defer f.Close()
		out = f
	}

	if gen == nil {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	doc, err := render(cmd.Context(), gen)
	if err != nil {
		return err
	}
	_, err = out.Write(doc)
	return err
}
