// Package xmlexport serializa los reportes de impuesto a XML con la forma que
// piden los portales de radicación: un nodo por sección y montos con dos decimales.
package xmlexport

import (
	"bytes"
	"context"
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gst-ledger/internal/domain/gst"
)

// Namespace del documento de reportes.
const Namespace = "urn:gst-ledger:reports:1"

// Builder implementa reports.ReportDocumentGenerator en XML.
type Builder struct {
	indent int
}

// NewBuilder construye el serializador; indent <= 0 produce XML compacto.
func NewBuilder(indent int) *Builder { return &Builder{indent: indent} }

// SalesRegisterDocument genera <SalesRegister> con un <Invoice> por fila.
func (b *Builder) SalesRegisterDocument(ctx context.Context, reg gst.SalesRegister) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, root := newDocument("SalesRegister", reg.Period, reg.Heuristic)

	invoices := root.CreateElement("Invoices")
	invoices.CreateAttr("count", fmt.Sprint(len(reg.Rows)))
	for _, r := range reg.Rows {
		inv := invoices.CreateElement("Invoice")
		if r.EntryID != "" {
			inv.CreateAttr("id", r.EntryID)
		}
		kind := "INV"
		if r.IsReturn {
			kind = "CDN"
		}
		inv.CreateAttr("kind", kind)
		if r.Estimated {
			inv.CreateAttr("estimated", "true")
		}
		inv.CreateElement("Date").SetText(r.Date)
		inv.CreateElement("Description").SetText(r.Description)
		addAmount(inv, "TaxableValue", r.TaxableAmount)
		inv.CreateElement("Rate").SetText(r.GSTRate.String())
		addAmount(inv, "TaxAmount", r.GSTAmount)
		addAmount(inv, "InvoiceValue", r.TotalAmount)
	}
	return b.write(doc)
}

// SummaryReturnDocument genera <SummaryReturn> con las secciones de salida,
// entrada, notas crédito, saldo y desglose por tarifa.
func (b *Builder) SummaryReturnDocument(ctx context.Context, sr gst.SummaryReturn) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, root := newDocument("SummaryReturn", sr.Period, sr.Heuristic)

	out := root.CreateElement("OutwardSupplies")
	addAmount(out, "TaxableValue", sr.OutwardTaxable)
	addAmount(out, "TaxAmount", sr.OutwardTax)

	in := root.CreateElement("InwardSupplies")
	addAmount(in, "TaxableValue", sr.InwardTaxable)
	addAmount(in, "TaxAmount", sr.InwardTax)

	cn := root.CreateElement("CreditNotes")
	addAmount(cn, "TaxAmount", sr.CreditNoteTax)

	addAmount(root, "NetLiability", sr.NetLiability)

	breakdown := root.CreateElement("RateBreakdown")
	for _, bucket := range sr.RateBreakdown {
		slab := breakdown.CreateElement("Slab")
		slab.CreateAttr("rate", bucket.Rate.String())
		addAmount(slab, "TaxableValue", bucket.TaxableAmount)
		addAmount(slab, "TaxAmount", bucket.GSTAmount)
	}
	return b.write(doc)
}

func newDocument(tag, period string, heuristic bool) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(tag)
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("period", period)
	if heuristic {
		root.CreateAttr("heuristic", "true")
	}
	return doc, root
}

func addAmount(parent *etree.Element, tag string, v decimal.Decimal) {
	parent.CreateElement(tag).SetText(v.StringFixed(2))
}

func (b *Builder) write(doc *etree.Document) ([]byte, error) {
	if b.indent > 0 {
		doc.Indent(b.indent)
	}
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlexport: serializar: %w", err)
	}
	return out.Bytes(), nil
}
