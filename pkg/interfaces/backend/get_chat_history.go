package backend

import (
	"context"
	"fmt"
	"net/http"
)

type chatHistoryResponse struct {
	Messages []ChatMessage `json:"messages"`
}

// GetChatHistory retrieves the ordered conversation for a video.
func (c *BackendClient) GetChatHistory(ctx context.Context, id int64) ([]ChatMessage, error) {
	const operation = "GetChatHistory"

	log := c.logger.WithField("video_id", id)

	endpoint := fmt.Sprintf("/api/videos/%d/chat", id)
	resp, err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		log.WithError(err).Error("Failed to fetch chat history")
		return nil, NewAPIError(ErrCodeRequestFailed, operation, 0, err)
	}
	defer resp.Body.Close()

	if err := c.handleResponse(operation, resp); err != nil {
		return nil, err
	}

	var history chatHistoryResponse
	if err := c.decodeResponse(operation, resp, &history); err != nil {
		return nil, err
	}

	log.WithField("messages", len(history.Messages)).Debug("Received chat history")
	return history.Messages, nil
}
