package client

import (
	"context"
	"net/http"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

// GetRecommendations returns the caller's stored match results from the
// last completed run, together with the applied/saved job id sets.
func (c *CVMatchClient) GetRecommendations(ctx context.Context) (*types.RecommendationSet, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var recommendations types.RecommendationSet

	err := c.makeRequest(ctx, http.MethodGet, "/recommendations", nil, &recommendations)
	if err != nil {
		return nil, err
	}

	return &recommendations, nil
}
