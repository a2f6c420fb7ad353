package app_test

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"phone_lookup_bot/internal/domain/phone"
	"phone_lookup_bot/internal/domain/user"
)

func newTestLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// memoryUserRepo is an in-memory user.Repository used across app tests.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[int64]*user.User
	seq   int64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[int64]*user.User)}
}

func (r *memoryUserRepo) Add(ctx context.Context, u *user.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.TelegramID]; ok {
		return false, nil
	}
	r.seq++
	u.ID = r.seq
	stored := *u
	r.users[u.TelegramID] = &stored
	return true, nil
}

func (r *memoryUserRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}

func (r *memoryUserRepo) ListTelegramIDs(ctx context.Context) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	return ids, nil
}

// sentMessage records one SendMessage call made through the fake client.
type sentMessage struct {
	ChatID  int64
	Text    string
	Options *telebot.SendOptions
}

// recordingClient is a fake telegram.Client that records every send.
// SendFunc, when set, decides the outcome per call.
type recordingClient struct {
	mu       sync.Mutex
	sent     []sentMessage
	SendFunc func(chatID int64, text string) error
}

func (c *recordingClient) SendMessage(chatID int64, text string, options *telebot.SendOptions) error {
	c.mu.Lock()
	c.sent = append(c.sent, sentMessage{ChatID: chatID, Text: text, Options: options})
	c.mu.Unlock()
	if c.SendFunc != nil {
		return c.SendFunc(chatID, text)
	}
	return nil
}

// Sent returns a copy of the recorded messages.
func (c *recordingClient) Sent() []sentMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]sentMessage, len(c.sent))
	copy(out, c.sent)
	return out
}

// SentTo returns the messages delivered to one chat.
func (c *recordingClient) SentTo(chatID int64) []sentMessage {
	var out []sentMessage
	for _, m := range c.Sent() {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out
}

// stubLookup is a fake phone.Lookup with a pluggable Resolve.
type stubLookup struct {
	ResolveFunc func(number string) (*phone.Info, error)
}

func (l *stubLookup) Resolve(number string) (*phone.Info, error) {
	return l.ResolveFunc(number)
}
