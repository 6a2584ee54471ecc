package email

import "fmt"

// SMTPConfig - параметры SMTP-сервера для отправки уведомлений
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
}

// DefaultConfig - STARTTLS на 587 порту
func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:     "localhost",
		Port:     587,
		FromName: "TalentPool",
		UseTLS:   true,
	}
}

// Validate проверяет, что конфигурации достаточно для отправки
func (c *SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.Port)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("sender address is required")
	}
	return nil
}
