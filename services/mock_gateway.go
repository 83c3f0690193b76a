package services

import "context"

// MockGateway is the development provider (CHAT_PROVIDER=mock). It returns a
// fixed gentle reflection so the chat flow works without credentials.
type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) Complete(_ context.Context, _, _ string, lang string) (string, error) {
	if normalizeLang(lang) == LangZH {
		return "听起来你最近不太容易。这里是一个轻松聊聊情绪的地方，不是专业诊断。", nil
	}
	return "I hear that you are going through something difficult. This space is for gentle reflection, not diagnosis.", nil
}
