package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Pasos aplicados antes del fallo (solo errores de escritura remota).
	// El sistema no compensa: esto existe para que el operador sepa qué quedó hecho.
	PasosAplicados []PasoAplicado `json:"pasos_aplicados,omitempty"`
}

// PasoAplicado escritura remota que sí se aplicó antes del fallo.
type PasoAplicado struct {
	Paso    string `json:"paso"`
	ID      int64  `json:"id,omitempty"`
	Recurso string `json:"recurso,omitempty"`
}

// MensajeResponse respuesta simple con mensaje.
type MensajeResponse struct {
	Message string `json:"message"`
}
