// Package chat implements the per-video research conversation. The buffer
// is append-only and reflects local interaction order: the user's message
// is appended optimistically before the backend confirms, and a failed send
// appends fixed fallback content instead of surfacing an error.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tikodea/dashboard-go/pkg/interfaces/backend"
)

// SessionState tracks the session lifecycle.
type SessionState string

const (
	StateLoading SessionState = "loading"
	StateReady   SessionState = "ready"
	StateSending SessionState = "sending"
)

// FallbackContent is appended as the assistant turn when a send fails.
const FallbackContent = "Sorry, I encountered an error. Please try again."

// ChatBackend is the slice of the backend client the session needs. It is
// satisfied by backend.BackendClient.
type ChatBackend interface {
	GetChatHistory(ctx context.Context, videoID int64) ([]backend.ChatMessage, error)
	SendChatMessage(ctx context.Context, videoID int64, message string) (*backend.ChatMessage, error)
}

// Session owns the conversation buffer for one video. It is owned by a
// single display flow; the Sending guard permits at most one in-flight send.
type Session struct {
	videoID  int64
	backend  ChatBackend
	logger   *logrus.Logger
	state    SessionState
	messages []backend.ChatMessage
	now      func() time.Time
}

// NewSession creates a session in the Loading state. Call Load to populate
// the buffer from history.
func NewSession(videoID int64, b ChatBackend, logger *logrus.Logger) *Session {
	if logger == nil {
		logger = logrus.New()
	}
	return &Session{
		videoID:  videoID,
		backend:  b,
		logger:   logger,
		state:    StateLoading,
		messages: []backend.ChatMessage{},
		now:      time.Now,
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	return s.state
}

// Sending reports whether a send is in flight.
func (s *Session) Sending() bool {
	return s.state == StateSending
}

// Messages returns a copy of the conversation buffer in interaction order.
func (s *Session) Messages() []backend.ChatMessage {
	out := make([]backend.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Load fetches the stored conversation. A history fetch failure is
// absorbed: the session becomes Ready with an empty buffer so the user can
// still converse.
func (s *Session) Load(ctx context.Context) {
	if s.state != StateLoading {
		return
	}

	history, err := s.backend.GetChatHistory(ctx, s.videoID)
	if err != nil {
		s.logger.WithField("video_id", s.videoID).
			WithError(err).Warn("Failed to load chat history, starting empty")
		s.messages = []backend.ChatMessage{}
		s.state = StateReady
		return
	}

	s.messages = append([]backend.ChatMessage{}, history...)
	s.state = StateReady
}

// Send appends the trimmed input as a user turn, requests the assistant
// reply, and appends either the real reply or the fallback content. The
// buffer always grows by exactly two messages. Returns false without any
// state change when the input trims to empty or a send is already in
// flight.
func (s *Session) Send(ctx context.Context, input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || s.state != StateReady {
		return false
	}

	s.messages = append(s.messages, backend.ChatMessage{
		Role:      backend.RoleUser,
		Content:   trimmed,
		CreatedAt: s.now().Format(time.RFC3339),
	})
	s.state = StateSending

	reply, err := s.backend.SendChatMessage(ctx, s.videoID, trimmed)
	if err != nil {
		s.logger.WithField("video_id", s.videoID).
			WithError(err).Warn("Chat send failed, appending fallback reply")
		s.messages = append(s.messages, backend.ChatMessage{
			Role:      backend.RoleAssistant,
			Content:   FallbackContent,
			CreatedAt: s.now().Format(time.RFC3339),
		})
		s.state = StateReady
		return true
	}

	createdAt := reply.CreatedAt
	if createdAt == "" {
		createdAt = s.now().Format(time.RFC3339)
	}
	s.messages = append(s.messages, backend.ChatMessage{
		Role:      backend.RoleAssistant,
		Content:   reply.Content,
		CreatedAt: createdAt,
	})
	s.state = StateReady
	return true
}
