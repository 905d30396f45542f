package dto

// LoginRequest credenciales del panel.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// LoginResponse token emitido.
type LoginResponse struct {
	Token   string `json:"token"`
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
}
