package backend

import (
	"context"
	"fmt"
	"net/http"
)

type sendChatRequest struct {
	Message string `json:"message"`
}

// SendChatMessage sends one user message about a video and returns the
// assistant's reply. The server does not echo the user message back; the
// caller appends its own copy to the conversation before calling.
func (c *BackendClient) SendChatMessage(ctx context.Context, id int64, message string) (*ChatMessage, error) {
	const operation = "SendChatMessage"

	log := c.logger.WithField("video_id", id)

	endpoint := fmt.Sprintf("/api/videos/%d/chat", id)
	resp, err := c.makeRequest(ctx, http.MethodPost, endpoint, nil, sendChatRequest{Message: message})
	if err != nil {
		log.WithError(err).Error("Failed to send chat message")
		return nil, NewAPIError(ErrCodeRequestFailed, operation, 0, err)
	}
	defer resp.Body.Close()

	if err := c.handleResponse(operation, resp); err != nil {
		return nil, err
	}

	var reply ChatMessage
	if err := c.decodeResponse(operation, resp, &reply); err != nil {
		return nil, err
	}

	log.Debug("Received assistant reply")
	return &reply, nil
}
