package email

import (
	"context"
	"strings"

	"jobboard_backend/internal/logger"
)

// LogProvider не отправляет письма, а пишет их в лог (dev-окружение без SMTP)
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(ctx context.Context, email *Email) error {
	logger.CtxInfo(ctx, "email (log provider)",
		"to", strings.Join(email.To, ","),
		"subject", email.Subject,
	)
	return nil
}

func (p *LogProvider) Validate() error {
	return nil
}
