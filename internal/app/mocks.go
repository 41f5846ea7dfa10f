package app

import "delivery_management/internal/logger"

// MockEmailProvider logs instead of sending. Used when no SMTP host is
// configured so local runs do not need a mail server.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(to, subject, body string) error {
	logger.Info("[MOCK EMAIL] message not sent", "to", to, "subject", subject)
	return nil
}
