package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct. Keys the payload does not declare are
// ignored; the site's forms have always sent extra fields.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	return json.NewDecoder(r.Body).Decode(data)
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Dados da avaliação estão incompletos."`
}

// MessageResponse is the body of successful writes.
type MessageResponse struct {
	Message string `json:"message" example:"Avaliação registrada com sucesso!"`
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, &ErrorResponse{Error: message})
}

// jsonResponse writes data as is. Clients read arrays and objects at the
// top level, so there is no envelope.
func (app *application) jsonResponse(w http.ResponseWriter, status int, data any) error {
	return writeJSON(w, status, data)
}

func (app *application) messageResponse(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, &MessageResponse{Message: message})
}
