package email

import "sync"

// MockProvider records sent mail for tests and local development.
type MockProvider struct {
	mu   sync.Mutex
	Sent []Email
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Send(email *Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, *email)
	return nil
}

func (m *MockProvider) SendLeaveDecision(to, name, status, rejectReason string) error {
	return m.Send(&Email{To: []string{to}, Subject: "Leave request " + status})
}

func (m *MockProvider) SendWelcome(to, name, username string) error {
	return m.Send(&Email{To: []string{to}, Subject: "Welcome to NameDesk"})
}

func (m *MockProvider) Close() error { return nil }
