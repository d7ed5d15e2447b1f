package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
)

// SameOriginClient targets the site's own content routes, which wrap every
// payload in a {success, data, error} envelope.
type SameOriginClient struct {
	client *Client
}

func NewSameOrigin(siteURL string, opts ...Option) *SameOriginClient {
	return &SameOriginClient{client: New(siteURL, opts...)}
}

func (s *SameOriginClient) BaseURL() string {
	return s.client.BaseURL()
}

// Do unwraps the envelope and decodes data into out.
func (s *SameOriginClient) Do(ctx context.Context, path string, req *Request, out any) error {
	var env models.Envelope
	if err := s.client.Do(ctx, path, req, &env); err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			var failed models.Envelope
			if json.Unmarshal(httpErr.Body, &failed) == nil && !failed.Success {
				httpErr.Message = failed.Error
			}
		}
		return err
	}

	if !env.Success {
		return &EnvelopeError{Path: path, Message: env.Error}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", path, err)
	}
	return nil
}
