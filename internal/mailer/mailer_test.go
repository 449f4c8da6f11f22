package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

type fakeSender struct {
	sent []*mail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestSMTPMailer_Send(t *testing.T) {
	sender := &fakeSender{}
	m := NewWithSender(sender, "noreply@vibecare.app")

	err := m.Send(context.Background(), "jane@example.com", "Hello", "body")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"noreply@vibecare.app"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"jane@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, msg.GetHeader("Subject"))
}

func TestSMTPMailer_SendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("dial tcp: refused")}
	m := NewWithSender(sender, "noreply@vibecare.app")

	err := m.Send(context.Background(), "jane@example.com", "Hello", "body")
	assert.Error(t, err)
}

func TestSMTPMailer_EmptyRecipient(t *testing.T) {
	sender := &fakeSender{}
	m := NewWithSender(sender, "noreply@vibecare.app")

	assert.ErrorIs(t, m.Send(context.Background(), "", "Hello", "body"), ErrNoRecipient)
	assert.Empty(t, sender.sent)
}

func TestNew_DefaultsFromToUser(t *testing.T) {
	m := New("smtp.example.com", 587, "bot@example.com", "secret", "")
	assert.Equal(t, "bot@example.com", m.from)
}

func TestNopMailer(t *testing.T) {
	var m NopMailer
	assert.NoError(t, m.Send(context.Background(), "jane@example.com", "Hello", "body"))
	assert.ErrorIs(t, m.Send(context.Background(), "", "Hello", "body"), ErrNoRecipient)
}
