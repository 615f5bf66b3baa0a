package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"seguros_xpto/internal/adapter/http/handlers"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/infrastructure/proposals"
	"seguros_xpto/internal/usecase"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

type memoryProposalRepo struct {
	mu    sync.Mutex
	items map[string]entities.Proposal
}

func (r *memoryProposalRepo) Create(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = p
	return p, nil
}

func (r *memoryProposalRepo) GetByID(_ context.Context, id string) (entities.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *memoryProposalRepo) List(_ context.Context) ([]entities.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Proposal, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryProposalRepo) UpdateStatus(_ context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return entities.Proposal{}, nil
	}
	p.Status = status
	r.items[id] = p
	return p, nil
}

type memoryHiringRepo struct {
	mu         sync.Mutex
	byProposal map[string]entities.Hiring
}

func (r *memoryHiringRepo) Create(_ context.Context, h entities.Hiring) (entities.Hiring, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byProposal[h.ProposalID]; ok {
		return entities.Hiring{}, interfaces.ErrHiringAlreadyExists
	}
	r.byProposal[h.ProposalID] = h
	return h, nil
}

func (r *memoryHiringRepo) GetByID(_ context.Context, id string) (entities.Hiring, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.byProposal {
		if h.ID == id {
			return h, nil
		}
	}
	return entities.Hiring{}, nil
}

func (r *memoryHiringRepo) List(_ context.Context) ([]entities.Hiring, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Hiring, 0, len(r.byProposal))
	for _, h := range r.byProposal {
		out = append(out, h)
	}
	return out, nil
}

type services struct {
	proposal *gin.Engine
	hiring   *gin.Engine
	hirings  *memoryHiringRepo
}

func startServices(t *testing.T) services {
	t.Helper()
	gin.SetMode(gin.TestMode)

	proposalRouter := NewProposalRouter(handlers.NewProposalHandler(
		usecase.NewProposalUseCase(&memoryProposalRepo{items: map[string]entities.Proposal{}}), nil,
	))
	srv := httptest.NewServer(proposalRouter)
	t.Cleanup(srv.Close)

	hirings := &memoryHiringRepo{byProposal: map[string]entities.Hiring{}}
	gateway := proposals.NewProposalHTTPGateway(srv.URL+"/v1", 0)
	hiringRouter := NewHiringRouter(handlers.NewHiringHandler(usecase.NewHiringUseCase(hirings, gateway), nil))

	return services{proposal: proposalRouter, hiring: hiringRouter, hirings: hirings}
}

func call(t *testing.T, r http.Handler, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func createProposal(t *testing.T, s services, name string) string {
	t.Helper()
	code, body := call(t, s.proposal, http.MethodPost, "/v1/proposals", map[string]any{
		"client_name":     name,
		"client_document": "000",
		"insured_value":   "1000.00",
	})
	if code != http.StatusCreated || body["status"] != "UnderReview" {
		t.Fatalf("create proposal: %d %v", code, body)
	}
	return body["id"].(string)
}

func TestWorkflow_RejectedAndApprovedProposals(t *testing.T) {
	s := startServices(t)

	p1 := createProposal(t, s, "P1")
	p2 := createProposal(t, s, "P2")

	if code, _ := call(t, s.proposal, http.MethodPatch, "/v1/proposals/"+p1+"/status", map[string]string{"new_status": "Rejeitada"}); code != http.StatusOK {
		t.Fatalf("reject p1: %d", code)
	}
	if code, _ := call(t, s.proposal, http.MethodPatch, "/v1/proposals/"+p2+"/status", map[string]string{"new_status": "Aprovada"}); code != http.StatusOK {
		t.Fatalf("approve p2: %d", code)
	}

	code, body := call(t, s.hiring, http.MethodPost, "/v1/hiring", map[string]string{"proposal_id": p1})
	if code != http.StatusBadRequest || body["error"] != "Only proposals with status 'Approved' can be hired." {
		t.Fatalf("hire p1: %d %v", code, body)
	}

	code, body = call(t, s.hiring, http.MethodPost, "/v1/hiring", map[string]string{"proposal_id": p2})
	if code != http.StatusOK || body["proposal_id"] != p2 || body["id"] == "" || body["hired_at"] == nil {
		t.Fatalf("hire p2: %d %v", code, body)
	}

	list, _ := s.hirings.List(context.Background())
	if len(list) != 1 || list[0].ProposalID != p2 {
		t.Fatalf("expected exactly one hiring for p2, got %+v", list)
	}
}

func TestWorkflow_UnknownProposal(t *testing.T) {
	s := startServices(t)

	code, body := call(t, s.hiring, http.MethodPost, "/v1/hiring", map[string]string{"proposal_id": "does-not-exist"})
	if code != http.StatusBadRequest || body["error"] != "Proposal not found." {
		t.Fatalf("hire unknown: %d %v", code, body)
	}
}

func TestWorkflow_UnderReviewCannotBeHired(t *testing.T) {
	s := startServices(t)
	p := createProposal(t, s, "P")

	code, _ := call(t, s.hiring, http.MethodPost, "/v1/hiring", map[string]string{"proposal_id": p})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if list, _ := s.hirings.List(context.Background()); len(list) != 0 {
		t.Fatalf("no hiring should be persisted")
	}
}

func TestWorkflow_DoubleHire(t *testing.T) {
	s := startServices(t)
	p := createProposal(t, s, "P")
	call(t, s.proposal, http.MethodPatch, "/v1/proposals/"+p+"/status", map[string]string{"new_status": "Approved"})

	if code, _ := call(t, s.hiring, http.MethodPost, "/v1/hiring", map[string]string{"proposal_id": p}); code != http.StatusOK {
		t.Fatalf("first hire: %d", code)
	}
	if code, _ := call(t, s.hiring, http.MethodPost, "/v1/hiring", map[string]string{"proposal_id": p}); code != http.StatusInternalServerError {
		t.Fatalf("second hire: expected 500, got %d", code)
	}
	if list, _ := s.hirings.List(context.Background()); len(list) != 1 {
		t.Fatalf("expected one hiring, got %d", len(list))
	}
}

func TestWorkflow_ApprovalIsCheckedOnlyAtHireTime(t *testing.T) {
	s := startServices(t)
	p := createProposal(t, s, "P")
	call(t, s.proposal, http.MethodPatch, "/v1/proposals/"+p+"/status", map[string]string{"new_status": "Approved"})

	code, body := call(t, s.hiring, http.MethodPost, "/v1/hiring", map[string]string{"proposal_id": p})
	if code != http.StatusOK {
		t.Fatalf("hire: %d", code)
	}
	call(t, s.proposal, http.MethodPatch, "/v1/proposals/"+p+"/status", map[string]string{"new_status": "Rejected"})

	if code, _ := call(t, s.hiring, http.MethodGet, "/v1/hiring/"+body["id"].(string), nil); code != http.StatusOK {
		t.Fatalf("hiring must survive later status change, got %d", code)
	}
}

func TestWorkflow_ProposalServiceDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	hirings := &memoryHiringRepo{byProposal: map[string]entities.Hiring{}}
	router := NewHiringRouter(handlers.NewHiringHandler(
		usecase.NewHiringUseCase(hirings, proposals.NewProposalHTTPGateway(url+"/v1", 0)), nil,
	))

	code, _ := call(t, router, http.MethodPost, "/v1/hiring", map[string]string{"proposal_id": "p-1"})
	if code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", code)
	}
}

func TestPing(t *testing.T) {
	s := startServices(t)
	for _, r := range []http.Handler{s.proposal, s.hiring} {
		code, body := call(t, r, http.MethodGet, "/v1/ping", nil)
		if code != http.StatusOK || body["message"] != "pong" {
			t.Fatalf("ping: %d %v", code, body)
		}
	}
}
