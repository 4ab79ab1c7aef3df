package dto

// CreateLedgerEntryRequest body para POST /api/ledger.
// Amount es bruto (IVA incluido); negativo para devoluciones.
type CreateLedgerEntryRequest struct {
	Date        string   `json:"date"` // YYYY-MM-DD
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Type        string   `json:"type"` // sale|purchase|expense|receipt|return
	GSTRate     *float64 `json:"gst_rate,omitempty"`
	GSTAmount   *float64 `json:"gst_amount,omitempty"`
}

// LedgerEntryResponse asiento en respuestas.
type LedgerEntryResponse struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Type        string   `json:"type"`
	GSTRate     *float64 `json:"gst_rate,omitempty"`
	GSTAmount   *float64 `json:"gst_amount,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// ReportQuery parámetros de consulta de los endpoints de reportes.
type ReportQuery struct {
	Period string `query:"period"` // YYYY-MM
	Format string `query:"format"` // json (default) | pdf | xml
}
