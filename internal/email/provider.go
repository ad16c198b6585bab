package email

// Provider sends outbound mail. Callers treat delivery as best-effort:
// failures are logged, never surfaced to the HTTP client.
type Provider interface {
	// Send sends a plain email message.
	Send(email *Email) error

	// SendLeaveDecision notifies an employee about a decided leave request.
	SendLeaveDecision(to, name, status, rejectReason string) error

	// SendWelcome sends the initial credentials notice to a new employee.
	SendWelcome(to, name, username string) error

	// Close shuts down the provider connection.
	Close() error
}

// Email is one outbound message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}
