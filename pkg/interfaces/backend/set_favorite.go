package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

type setFavoriteRequest struct {
	IsFavorite bool `json:"is_favorite"`
}

// SetFavorite sets the favorite flag on a video. The caller typically flips
// its local copy optimistically before the request settles.
func (c *BackendClient) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	const operation = "SetFavorite"

	log := c.logger.WithFields(logrus.Fields{
		"video_id":    id,
		"is_favorite": favorite,
	})

	endpoint := fmt.Sprintf("/api/videos/%d/favorite", id)
	resp, err := c.makeRequest(ctx, http.MethodPatch, endpoint, nil, setFavoriteRequest{IsFavorite: favorite})
	if err != nil {
		log.WithError(err).Error("Failed to set favorite")
		return NewAPIError(ErrCodeRequestFailed, operation, 0, err)
	}
	defer resp.Body.Close()

	if err := c.handleResponse(operation, resp); err != nil {
		return err
	}

	log.Debug("Favorite updated")
	return nil
}
