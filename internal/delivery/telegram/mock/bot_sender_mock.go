package mock_bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type MockBot struct {
	mu           sync.Mutex
	SentMessages []tgbotapi.Chattable
	Requests     []tgbotapi.Chattable
	Updates      chan tgbotapi.Update

	// EditErr, when set, is returned for every message edit.
	EditErr error
	// SendErr, when set, is returned for every other request.
	SendErr error

	nextID int
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SentMessages = append(m.SentMessages, c)

	if edit, ok := c.(tgbotapi.EditMessageTextConfig); ok {
		if m.EditErr != nil {
			return tgbotapi.Message{}, m.EditErr
		}
		return tgbotapi.Message{MessageID: edit.MessageID, Chat: &tgbotapi.Chat{ID: edit.ChatID}}, nil
	}
	if m.SendErr != nil {
		return tgbotapi.Message{}, m.SendErr
	}

	m.nextID++
	return tgbotapi.Message{MessageID: m.nextID, Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func (m *MockBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (m *MockBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Updates == nil {
		m.Updates = make(chan tgbotapi.Update)
	}
	return m.Updates
}

// Sent returns a copy of the recorded messages.
func (m *MockBot) Sent() []tgbotapi.Chattable {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]tgbotapi.Chattable(nil), m.SentMessages...)
}

func ClearSentMessages(bot *MockBot) {
	bot.mu.Lock()
	defer bot.mu.Unlock()
	bot.SentMessages = nil
	bot.Requests = nil
}
