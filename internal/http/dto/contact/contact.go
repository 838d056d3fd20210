// Package contact contiene DTOs del formulario de contacto.
package contact

// Request es un mensaje enviado desde el formulario público.
type Request struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// Response confirma la recepción del mensaje.
type Response struct {
	Message string `json:"message"`
}
