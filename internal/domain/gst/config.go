// Package gst contiene las reglas puras de IVA por tramos (GST): validación de
// fechas y asientos, normalización de impuestos, notas crédito, redondeo y la
// forma de los reportes (libro de ventas y declaración resumen).
// No hace I/O ni guarda estado entre llamadas.
package gst

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Slabs tramos de tarifa permitidos (porcentaje).
var Slabs = []float64{0, 5, 12, 18, 28}

// MaxRate tarifa máxima del régimen.
const MaxRate = 28

// IsSlab indica si rate es uno de los tramos permitidos.
func IsSlab(rate float64) bool {
	for _, s := range Slabs {
		if rate == s {
			return true
		}
	}
	return false
}

// Config reglas de negocio para asignar tarifa cuando el asiento no trae una válida.
type Config struct {
	DefaultRate        float64 // cualquier otro tipo
	StandardRate       float64 // ventas >= LargeSaleThreshold
	ReducedRate        float64 // ventas menores
	PurchaseRate       float64 // compras (IVA descontable)
	LargeSaleThreshold float64 // monto bruto
}

// DefaultConfig valores por defecto del régimen.
func DefaultConfig() Config {
	return Config{
		DefaultRate:        18,
		StandardRate:       18,
		ReducedRate:        5,
		PurchaseRate:       12,
		LargeSaleThreshold: 1000,
	}
}

// Validate exige que todas las tarifas sean tramos y el umbral no sea negativo.
func (c Config) Validate() error {
	rates := map[string]float64{
		"default":  c.DefaultRate,
		"standard": c.StandardRate,
		"reduced":  c.ReducedRate,
		"purchase": c.PurchaseRate,
	}
	for name, r := range rates {
		if !IsSlab(r) {
			return fmt.Errorf("gst: tarifa %s %v no es un tramo permitido", name, r)
		}
	}
	if !isFinite(c.LargeSaleThreshold) || c.LargeSaleThreshold < 0 {
		return fmt.Errorf("gst: umbral de venta grande inválido: %v", c.LargeSaleThreshold)
	}
	return nil
}

var hundred = decimal.NewFromInt(100)
