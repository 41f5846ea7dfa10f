package email

// Provider is the outbound email transport consumed by the notification
// dispatcher. body is treated as HTML.
type Provider interface {
	Send(to, subject, body string) error
}
