// Package errors define el tipo de error de aplicación y su
// serialización HTTP. El contrato de wire para clientes es siempre
// {"error": "<mensaje>"} con status no-2xx.
package errors

import (
	"encoding/json"
	"net/http"
)

// errorResponse es la forma JSON expuesta a los clientes.
type errorResponse struct {
	Error string `json:"error"`
	// Redirect indica al shell de páginas protegidas a dónde ir cuando
	// la sesión no resuelve. Solo presente en respuestas de sesión.
	Redirect string `json:"redirect,omitempty"`
}

// WriteError escribe una respuesta HTTP basada en el error provisto.
// Maneja tanto *AppError como errores genéricos.
func WriteError(w http.ResponseWriter, err error) {
	appErr := FromError(err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: appErr.Message})
}

// WriteErrorRedirect escribe el error más el destino de redirección del
// shell (branch "redirect" del page shell protegido).
func WriteErrorRedirect(w http.ResponseWriter, err error, redirect string) {
	appErr := FromError(err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: appErr.Message, Redirect: redirect})
}
