package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

type setTagsRequest struct {
	Tags []string `json:"tags"`
}

// SetTags replaces the entire manual tag collection on a video. This is a
// full replace, not a merge; the caller sends the complete post-edit list.
// Validation of the tags themselves is the caller's responsibility.
func (c *BackendClient) SetTags(ctx context.Context, id int64, tags []string) error {
	const operation = "SetTags"

	log := c.logger.WithFields(logrus.Fields{
		"video_id": id,
		"tags":     len(tags),
	})

	if tags == nil {
		tags = []string{}
	}

	endpoint := fmt.Sprintf("/api/videos/%d/tags", id)
	resp, err := c.makeRequest(ctx, http.MethodPatch, endpoint, nil, setTagsRequest{Tags: tags})
	if err != nil {
		log.WithError(err).Error("Failed to update tags")
		return NewAPIError(ErrCodeRequestFailed, operation, 0, err)
	}
	defer resp.Body.Close()

	if err := c.handleResponse(operation, resp); err != nil {
		return err
	}

	log.Debug("Tags replaced")
	return nil
}
