package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
)

// ListVideosParams holds the optional filters for the ListVideos request.
// Unset options are omitted from the query string entirely, so the server
// applies its own defaults; a nil Skip is different from Skip 0 being sent.
type ListVideosParams struct {
	Skip          *int   // pagination offset
	Limit         *int   // page size
	FavoritesOnly bool   // restrict to is_favorite = true
	Search        string // substring match over title/description/transcript
	Tag           string // exact match over hashtags and manual tags
}

func (p ListVideosParams) query() url.Values {
	query := url.Values{}
	if p.Skip != nil {
		query.Set("skip", strconv.Itoa(*p.Skip))
	}
	if p.Limit != nil {
		query.Set("limit", strconv.Itoa(*p.Limit))
	}
	if p.FavoritesOnly {
		query.Set("favorites_only", "true")
	}
	if p.Search != "" {
		query.Set("search", p.Search)
	}
	if p.Tag != "" {
		query.Set("tag", p.Tag)
	}
	return query
}

// VideosResponse is one page of the video listing.
type VideosResponse struct {
	Videos []Video `json:"videos"`
	Total  int     `json:"total"`
	Skip   int     `json:"skip"`
	Limit  int     `json:"limit"`
}

// ListVideos retrieves a page of videos matching the given filters.
func (c *BackendClient) ListVideos(ctx context.Context, params ListVideosParams) (*VideosResponse, error) {
	const operation = "ListVideos"

	log := c.logger.WithFields(logrus.Fields{
		"method":         operation,
		"favorites_only": params.FavoritesOnly,
		"search":         params.Search,
		"tag":            params.Tag,
	})

	resp, err := c.makeRequest(ctx, http.MethodGet, "/api/videos", params.query(), nil)
	if err != nil {
		log.WithError(err).Error("Failed to list videos")
		return nil, NewAPIError(ErrCodeRequestFailed, operation, 0, err)
	}
	defer resp.Body.Close()

	if err := c.handleResponse(operation, resp); err != nil {
		return nil, err
	}

	var videos VideosResponse
	if err := c.decodeResponse(operation, resp, &videos); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"returned": len(videos.Videos),
		"total":    videos.Total,
	}).Debug("Received video listing")

	return &videos, nil
}
