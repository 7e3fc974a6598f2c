package domain

// APIResponse é o envelope padrão das respostas de sucesso.
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Location created successfully"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Success  bool   `json:"success" example:"false"`
	Code     int    `json:"code" example:"400"`
	Category string `json:"category" example:"INVALID_HIERARCHY"`
	Message  string `json:"message" example:"parent does not exist"`
}

// HealthResponse é o corpo de GET /.
type HealthResponse struct {
	Message   string `json:"message" example:"Welcome"`
	Status    string `json:"status" example:"Server is running successfully"`
	Timestamp string `json:"timestamp" example:"2024-05-01T12:00:00Z"`
}
