package models

// ErrorResponse é o corpo padrão de erro da API
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationDetails separa erros do corpo como um todo (formErrors) dos
// erros por campo (fieldErrors), no formato consumido pelo frontend
type ValidationDetails struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// ValidationErrorResponse é o corpo das respostas 422
type ValidationErrorResponse struct {
	Error   string            `json:"error"`
	Details ValidationDetails `json:"details"`
}
