package proposals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
)

// ErrProposalServiceUnavailable wraps every lookup failure that is not a 404.
var ErrProposalServiceUnavailable = errors.New("proposal service unavailable")

const (
	defaultTimeout  = 5 * time.Second
	maxResponseSize = 1 << 20
)

type proposalPayload struct {
	ID     string  `json:"id"`
	Status *string `json:"status"`
}

// ProposalHTTPGateway queries the proposal-service over HTTP.
type ProposalHTTPGateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IProposalGateway = (*ProposalHTTPGateway)(nil)

// NewProposalHTTPGateway builds a gateway for baseURL (e.g. http://proposal-api:8080/v1).
// timeout <= 0 uses 5s.
func NewProposalHTTPGateway(baseURL string, timeout time.Duration) *ProposalHTTPGateway {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ProposalHTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *ProposalHTTPGateway) GetProposalStatus(ctx context.Context, proposalID string) (entities.ProposalStatusView, error) {
	endpoint := g.baseURL + "/proposals/" + url.PathEscape(proposalID)
	log.Printf("[hiring][gateway] lookup start proposal_id=%s", proposalID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.ProposalStatusView{}, fmt.Errorf("%w: %w", ErrProposalServiceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[hiring][gateway] lookup failed proposal_id=%s err=%v", proposalID, err)
		return entities.ProposalStatusView{}, fmt.Errorf("%w: %w", ErrProposalServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		log.Printf("[hiring][gateway] proposal not found proposal_id=%s", proposalID)
		return entities.ProposalStatusView{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[hiring][gateway] unexpected status proposal_id=%s http_status=%d", proposalID, resp.StatusCode)
		return entities.ProposalStatusView{}, fmt.Errorf("%w: unexpected http status %d", ErrProposalServiceUnavailable, resp.StatusCode)
	}

	var payload proposalPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&payload); err != nil {
		log.Printf("[hiring][gateway] decode failed proposal_id=%s err=%v", proposalID, err)
		return entities.ProposalStatusView{}, fmt.Errorf("%w: decode response: %w", ErrProposalServiceUnavailable, err)
	}
	if payload.Status == nil {
		return entities.ProposalStatusView{}, fmt.Errorf("%w: response without status", ErrProposalServiceUnavailable)
	}

	view := entities.ProposalStatusView{ID: payload.ID, Status: *payload.Status}
	if view.ID == "" {
		view.ID = proposalID
	}
	log.Printf("[hiring][gateway] lookup success proposal_id=%s status=%s", proposalID, view.Status)
	return view, nil
}
