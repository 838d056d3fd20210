// Package contact implementa el formulario de contacto del sitio: el
// mensaje se reenvía por SMTP al inbox configurado.
package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/storesight/storesight/internal/email"
	dto "github.com/storesight/storesight/internal/http/dto/contact"
	"github.com/storesight/storesight/internal/observability/logger"
	"github.com/storesight/storesight/internal/validation"
)

// Service define el envío de mensajes de contacto.
type Service interface {
	Send(ctx context.Context, in dto.Request) (*dto.Response, error)
}

// Deps contiene las dependencias del servicio.
type Deps struct {
	Sender email.Sender
	// Inbox es la casilla destino de todos los mensajes.
	Inbox string
}

type service struct {
	deps Deps
}

// New crea el servicio de contacto.
func New(deps Deps) Service {
	return &service{deps: deps}
}

// Errores del servicio de contacto
var (
	ErrMissingFields = fmt.Errorf("missing required fields")
	ErrInvalidEmail  = fmt.Errorf("invalid email")
	ErrSendFailed    = fmt.Errorf("failed to send message")
	ErrNotConfigured = fmt.Errorf("contact inbox not configured")
)

const maxMessageLen = 10_000

func (s *service) Send(ctx context.Context, in dto.Request) (*dto.Response, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("contact"),
		logger.Op("Send"),
	)

	if s.deps.Sender == nil || s.deps.Inbox == "" {
		return nil, ErrNotConfigured
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)

	if in.Name == "" || in.Email == "" || in.Message == "" {
		return nil, ErrMissingFields
	}
	if !validation.ValidEmail(in.Email) {
		return nil, ErrInvalidEmail
	}
	if len(in.Message) > maxMessageLen {
		return nil, ErrMissingFields
	}

	subject := in.Subject
	if subject == "" {
		subject = "New contact message"
	}
	subject = fmt.Sprintf("[contact] %s", subject)

	body := fmt.Sprintf("From: %s <%s>\n\n%s", in.Name, in.Email, in.Message)

	if err := s.deps.Sender.Send(s.deps.Inbox, subject, body, in.Email); err != nil {
		log.Error("contact mail send failed", logger.Err(err))
		return nil, ErrSendFailed
	}

	log.Info("contact message forwarded", logger.Email(in.Email))
	return &dto.Response{Message: "Message sent"}, nil
}
