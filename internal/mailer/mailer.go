// mailer описывает контракт внешнего отправителя писем.
// Реальная доставка — ответственность внешнего коллаборатора;
// сервис лишь передаёт ему готовую ссылку или код.
package mailer

import (
	"context"
	"log/slog"

	"github.com/avilovaa/kinship/auth-service/internal/pkg/redact"
)

// Mailer — минимальный контракт исходящей почты auth-сервиса.
type Mailer interface {
	// SendResetLink отправляет письмо с готовой ссылкой восстановления пароля.
	SendResetLink(ctx context.Context, email, link string) error
	// SendMFACode отправляет письмо с кодом подтверждения входа.
	SendMFACode(ctx context.Context, email, code string) error
}

// LogMailer пишет факт отправки в лог вместо реальной доставки.
// Используется в local/dev окружениях; содержимое писем в лог не попадает.
type LogMailer struct {
	log *slog.Logger
}

// NewLogMailer создаёт LogMailer поверх переданного логгера.
func NewLogMailer(log *slog.Logger) *LogMailer {
	if log == nil {
		log = slog.Default()
	}

	return &LogMailer{log: log}
}

func (m *LogMailer) SendResetLink(_ context.Context, email, link string) error {
	m.log.Info("reset_link_mail",
		slog.String("email", redact.Email(email)),
		slog.String("link", redact.Link(link)),
	)

	return nil
}

func (m *LogMailer) SendMFACode(_ context.Context, email, _ string) error {
	m.log.Info("mfa_code_mail",
		slog.String("email", redact.Email(email)),
		slog.String("code", redact.Passcode()),
	)

	return nil
}

var _ Mailer = (*LogMailer)(nil)
