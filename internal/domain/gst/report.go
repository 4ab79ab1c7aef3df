package gst

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
)

// SalesRegisterRow fila del libro de ventas (análogo GSTR-1): una por venta que sobrevive al filtro.
type SalesRegisterRow struct {
	EntryID     string `json:"entry_id,omitempty"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Type        string `json:"type"`
	NormalizedTax
	IsReturn  bool `json:"is_return"` // nota crédito; montos en positivo
	Estimated bool `json:"estimated"` // el asiento no traía tarifa ni impuesto
}

// SalesRegister libro de ventas de un período.
type SalesRegister struct {
	Period    string             `json:"period"`
	Rows      []SalesRegisterRow `json:"rows"`
	Heuristic bool               `json:"heuristic"`
}

// RateBucket acumulado de ventas por tramo.
type RateBucket struct {
	Rate          decimal.Decimal `json:"rate"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	GSTAmount     decimal.Decimal `json:"gst_amount"`
}

// SummaryReturn declaración resumen del período (análogo GSTR-3B).
// NetLiability = max(OutwardTax - InwardTax, 0): un saldo a favor no se arrastra.
type SummaryReturn struct {
	Period         string          `json:"period"`
	OutwardTaxable decimal.Decimal `json:"outward_taxable"`
	OutwardTax     decimal.Decimal `json:"outward_tax"`
	InwardTaxable  decimal.Decimal `json:"inward_taxable"`
	InwardTax      decimal.Decimal `json:"inward_tax"`
	CreditNoteTax  decimal.Decimal `json:"credit_note_tax"`
	NetLiability   decimal.Decimal `json:"net_liability"`
	RateBreakdown  []RateBucket    `json:"rate_breakdown"`
	Heuristic      bool            `json:"heuristic"`
}

// ProfitAndLoss resumen de resultados del período por tipo de asiento.
// NetGST puede ser negativo: es informativo y no reemplaza NetLiability.
type ProfitAndLoss struct {
	Period        string          `json:"period"`
	TotalEntries  int             `json:"total_entries"`
	Sales         decimal.Decimal `json:"sales"`
	Purchases     decimal.Decimal `json:"purchases"`
	Expenses      decimal.Decimal `json:"expenses"`
	Receipts      decimal.Decimal `json:"receipts"`
	Returns       decimal.Decimal `json:"returns"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	GSTCollected  decimal.Decimal `json:"gst_collected"`
	GSTPaid       decimal.Decimal `json:"gst_paid"`
	NetGST        decimal.Decimal `json:"net_gst"`
	Heuristic     bool            `json:"heuristic"`
}

// BuildSalesRegister arma el libro de ventas conservando el orden de origen.
// Solo ventas válidas; las de monto negativo pasan primero por HandleReturn y se
// descartan si no se pueden descomponer.
func (n *Normalizer) BuildSalesRegister(period string, entries []entity.LedgerEntry) SalesRegister {
	rows := make([]SalesRegisterRow, 0, len(entries))
	for _, e := range entries {
		if e.Type != entity.EntryTypeSale || !IsValidEntry(e) {
			continue
		}
		row := SalesRegisterRow{
			EntryID:     e.ID,
			Date:        e.Date,
			Description: e.Description,
			Type:        e.Type,
			Estimated:   LacksTaxData(e),
		}
		if *e.Amount < 0 {
			tax, ok := HandleReturn(e)
			if !ok {
				continue
			}
			row.NormalizedTax = tax
			row.IsReturn = true
		} else {
			row.NormalizedTax = n.NormalizeTax(e)
		}
		rows = append(rows, row)
	}
	return SalesRegister{
		Period:    period,
		Rows:      rows,
		Heuristic: IsHeuristicMode(rows),
	}
}

// BuildSummaryReturn agrega ventas (outward) y compras (inward) del período.
// Las notas crédito de venta se reportan aparte en CreditNoteTax.
func (n *Normalizer) BuildSummaryReturn(period string, entries []entity.LedgerEntry) SummaryReturn {
	out := SummaryReturn{
		Period:         period,
		OutwardTaxable: decimal.Zero,
		OutwardTax:     decimal.Zero,
		InwardTaxable:  decimal.Zero,
		InwardTax:      decimal.Zero,
		CreditNoteTax:  decimal.Zero,
	}
	buckets := make(map[string]*RateBucket)

	for _, e := range entries {
		if !IsValidEntry(e) {
			continue
		}
		switch {
		case e.Type == entity.EntryTypeReturn || (e.Type == entity.EntryTypeSale && *e.Amount < 0):
			if tax, ok := HandleReturn(e); ok {
				out.CreditNoteTax = out.CreditNoteTax.Add(tax.GSTAmount)
			}
		case e.Type == entity.EntryTypeSale:
			tax := n.NormalizeTax(e)
			out.OutwardTaxable = out.OutwardTaxable.Add(tax.TaxableAmount)
			out.OutwardTax = out.OutwardTax.Add(tax.GSTAmount)
			key := tax.GSTRate.String()
			b, ok := buckets[key]
			if !ok {
				b = &RateBucket{Rate: tax.GSTRate}
				buckets[key] = b
			}
			b.TaxableAmount = b.TaxableAmount.Add(tax.TaxableAmount)
			b.GSTAmount = b.GSTAmount.Add(tax.GSTAmount)
			out.Heuristic = out.Heuristic || LacksTaxData(e)
		case e.Type == entity.EntryTypePurchase && *e.Amount >= 0:
			tax := n.NormalizeTax(e)
			out.InwardTaxable = out.InwardTaxable.Add(tax.TaxableAmount)
			out.InwardTax = out.InwardTax.Add(tax.GSTAmount)
			out.Heuristic = out.Heuristic || LacksTaxData(e)
		}
	}

	out.OutwardTaxable = RoundMoney(out.OutwardTaxable)
	out.OutwardTax = RoundMoney(out.OutwardTax)
	out.InwardTaxable = RoundMoney(out.InwardTaxable)
	out.InwardTax = RoundMoney(out.InwardTax)
	out.CreditNoteTax = RoundMoney(out.CreditNoteTax)
	out.NetLiability = decimal.Max(out.OutwardTax.Sub(out.InwardTax), decimal.Zero)

	out.RateBreakdown = make([]RateBucket, 0, len(buckets))
	for _, b := range buckets {
		out.RateBreakdown = append(out.RateBreakdown, *b)
	}
	slices.SortFunc(out.RateBreakdown, func(a, b RateBucket) int { return a.Rate.Cmp(b.Rate) })
	return out
}

// BuildProfitAndLoss resume ingresos y egresos por tipo. Los recibos no llevan
// impuesto: suman su monto bruto.
func (n *Normalizer) BuildProfitAndLoss(period string, entries []entity.LedgerEntry) ProfitAndLoss {
	pl := ProfitAndLoss{Period: period}
	for _, e := range entries {
		if !IsValidEntry(e) {
			continue
		}
		pl.TotalEntries++
		if IsReturn(e) {
			if e.Type == entity.EntryTypeSale || e.Type == entity.EntryTypeReturn {
				pl.Returns = pl.Returns.Add(money(math.Abs(*e.Amount)))
				if tax, ok := HandleReturn(e); ok {
					pl.GSTCollected = pl.GSTCollected.Sub(tax.GSTAmount)
				}
			}
			continue
		}
		switch e.Type {
		case entity.EntryTypeReceipt:
			pl.Receipts = pl.Receipts.Add(money(*e.Amount))
		case entity.EntryTypeSale:
			tax := n.NormalizeTax(e)
			pl.Sales = pl.Sales.Add(tax.TotalAmount)
			pl.GSTCollected = pl.GSTCollected.Add(tax.GSTAmount)
			pl.Heuristic = pl.Heuristic || LacksTaxData(e)
		case entity.EntryTypePurchase:
			tax := n.NormalizeTax(e)
			pl.Purchases = pl.Purchases.Add(tax.TotalAmount)
			pl.GSTPaid = pl.GSTPaid.Add(tax.GSTAmount)
			pl.Heuristic = pl.Heuristic || LacksTaxData(e)
		case entity.EntryTypeExpense:
			tax := n.NormalizeTax(e)
			pl.Expenses = pl.Expenses.Add(tax.TotalAmount)
			pl.GSTPaid = pl.GSTPaid.Add(tax.GSTAmount)
			pl.Heuristic = pl.Heuristic || LacksTaxData(e)
		}
	}
	pl.TotalIncome = RoundMoney(pl.Sales.Add(pl.Receipts).Sub(pl.Returns))
	pl.TotalExpenses = RoundMoney(pl.Purchases.Add(pl.Expenses))
	pl.NetProfit = pl.TotalIncome.Sub(pl.TotalExpenses)
	pl.NetGST = RoundMoney(pl.GSTCollected.Sub(pl.GSTPaid))
	return pl
}
