package backend

import (
	"context"
	"fmt"
	"net/http"
)

// GetVideo retrieves a single video by id. A 404 is reported as NOT_FOUND
// since the request targets one specific record; any other non-success
// response is the usual REQUEST_FAILED.
func (c *BackendClient) GetVideo(ctx context.Context, id int64) (*Video, error) {
	const operation = "GetVideo"

	log := c.logger.WithField("video_id", id)

	resp, err := c.makeRequest(ctx, http.MethodGet, fmt.Sprintf("/api/videos/%d", id), nil, nil)
	if err != nil {
		log.WithError(err).Error("Failed to fetch video")
		return nil, NewAPIError(ErrCodeRequestFailed, operation, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		log.WithField("status_code", resp.StatusCode).Warn("Video not found")
		return nil, NewAPIError(ErrCodeNotFound, operation, resp.StatusCode, nil)
	}
	if err := c.handleResponse(operation, resp); err != nil {
		return nil, err
	}

	var video Video
	if err := c.decodeResponse(operation, resp, &video); err != nil {
		return nil, err
	}

	return &video, nil
}
