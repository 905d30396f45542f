package movimientos

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Paso identifica cada escritura remota de la secuencia de envío.
// La secuencia es un saga sin compensaciones: si un paso falla, los anteriores
// quedan aplicados y el error expone hasta dónde se llegó.
type Paso string

const (
	PasoCrearProveedor     Paso = "crear_proveedor"
	PasoCrearArticulo      Paso = "crear_articulo"
	PasoCrearCabecera      Paso = "crear_cabecera"
	PasoCrearDetalle       Paso = "crear_detalle"
	PasoActualizarArticulo Paso = "actualizar_articulo"
)

// PasoCompletado escritura remota ya aplicada, con el ID acuñado por el API.
type PasoCompletado struct {
	Paso    Paso   `json:"paso"`
	ID      int64  `json:"id,omitempty"`
	Recurso string `json:"recurso,omitempty"` // nombre del artículo/proveedor afectado
}

// Advertencia aviso no bloqueante: el costo recalculado superó el precio de
// venta leído antes de actualizar. El precio de venta nunca se ajusta solo.
type Advertencia struct {
	ArticuloID  int64           `json:"articulo_id"`
	Articulo    string          `json:"articulo"`
	CostoNuevo  decimal.Decimal `json:"costo_nuevo"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
}

func (a Advertencia) String() string {
	return fmt.Sprintf("el costo %s de %q supera su precio de venta %s", a.CostoNuevo, a.Articulo, a.PrecioVenta)
}

// ResultadoEnvio resultado de un envío exitoso: cabecera creada, pasos
// aplicados en orden y advertencias de costo.
type ResultadoEnvio struct {
	RegistroID   int64            `json:"registro_id"`
	Completados  []PasoCompletado `json:"pasos_completados"`
	Advertencias []Advertencia    `json:"advertencias,omitempty"`
}

func (r *ResultadoEnvio) completar(p Paso, id int64, recurso string) {
	r.Completados = append(r.Completados, PasoCompletado{Paso: p, ID: id, Recurso: recurso})
}

// ErrEscrituraRemota una escritura contra el API remoto falló a mitad de la
// secuencia. Completados lista lo que sí quedó aplicado; nada se revierte.
type ErrEscrituraRemota struct {
	Paso        Paso
	Recurso     string
	Completados []PasoCompletado
	Err         error
}

func (e *ErrEscrituraRemota) Error() string {
	return fmt.Sprintf("escritura remota falló en %s (%s), %d pasos ya aplicados: %v",
		e.Paso, e.Recurso, len(e.Completados), e.Err)
}

func (e *ErrEscrituraRemota) Unwrap() error { return e.Err }
