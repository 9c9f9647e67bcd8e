// Package schemes provides access to the welfare-scheme registry and the
// eligibility filter applied before schemes are shown to the model.
package schemes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sahayak-backend/internal/models"
)

// Source yields the current scheme collection. Implementations are expected
// to be unreliable; callers treat any error as "no schemes available".
type Source interface {
	Schemes(ctx context.Context) ([]models.Scheme, error)
}

// HTTPSource fetches schemes from the remote registry endpoint on every call.
// No caching: the registry is the source of truth and the result set is small.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Schemes(ctx context.Context) ([]models.Scheme, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build schemes request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("schemes fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schemes endpoint returned status %d", resp.StatusCode)
	}

	var raw []rawScheme
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode schemes payload: %w", err)
	}

	out := make([]models.Scheme, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.normalize())
	}
	return out, nil
}

// StaticSource serves the bundled scheme list. Used when no registry endpoint
// is configured and as the fixture source in tests.
type StaticSource struct {
	schemes []models.Scheme
}

func NewStaticSource(schemes []models.Scheme) *StaticSource {
	if schemes == nil {
		schemes = BundledSchemes()
	}
	return &StaticSource{schemes: schemes}
}

func (s *StaticSource) Schemes(context.Context) ([]models.Scheme, error) {
	out := make([]models.Scheme, len(s.schemes))
	copy(out, s.schemes)
	return out, nil
}
