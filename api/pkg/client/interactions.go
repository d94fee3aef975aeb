package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

// LogInteraction records one audit event. The endpoint is idempotent: a
// replayed (job, action) pair answers already_exists, which callers should
// treat as success.
func (c *CVMatchClient) LogInteraction(ctx context.Context, req *types.InteractionRequest) (*types.InteractionResponse, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	if _, err := types.ValidateInteractionAction(string(req.Action), false); err != nil {
		return nil, err
	}
	if req.JobID == 0 {
		return nil, fmt.Errorf("job id is required")
	}

	bts, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	var interactionResp types.InteractionResponse
	err = c.makeRequest(ctx, http.MethodPost, "/interactions/log", bytes.NewBuffer(bts), &interactionResp)
	if err != nil {
		return nil, err
	}

	return &interactionResp, nil
}
