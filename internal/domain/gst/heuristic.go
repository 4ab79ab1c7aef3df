package gst

import "github.com/jhoicas/gst-ledger/internal/domain/entity"

// LacksTaxData indica que el asiento no trae ni tarifa ni impuesto finitos, por lo
// que el normalizador tuvo que inventar ambos con las reglas de negocio.
func LacksTaxData(e entity.LedgerEntry) bool {
	return !finite(e.GSTRate) && !finite(e.GSTAmount)
}

// IsHeuristicMode indica si alguna fila del reporte es estimada. Es solo una señal
// para la UI; no altera ningún cálculo.
func IsHeuristicMode(rows []SalesRegisterRow) bool {
	for _, r := range rows {
		if r.Estimated {
			return true
		}
	}
	return false
}
