package proposals

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProposalHTTPGateway_GetProposalStatus(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantID     string
		wantStatus string
		wantErr    bool
	}{
		{
			name: "found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/proposals/p-1" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":"p-1","client_name":"Ana","insured_value":"10","status":"Approved"}`))
			},
			wantID:     "p-1",
			wantStatus: "Approved",
		},
		{
			name: "status copied verbatim with case-insensitive keys",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"Id":"p-1","Status":"Aprovada"}`))
			},
			wantID:     "p-1",
			wantStatus: "Aprovada",
		},
		{
			name: "absent",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: true,
		},
		{
			name: "bad request is not absence",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			wantErr: true,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":`))
			},
			wantErr: true,
		},
		{
			name: "missing status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":"p-1"}`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			g := NewProposalHTTPGateway(srv.URL+"/v1/", time.Second)
			view, err := g.GetProposalStatus(context.Background(), "p-1")
			if tt.wantErr {
				if !errors.Is(err, ErrProposalServiceUnavailable) {
					t.Fatalf("expected ErrProposalServiceUnavailable, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if view.ID != tt.wantID || view.Status != tt.wantStatus {
				t.Fatalf("unexpected view: %+v", view)
			}
		})
	}
}

func TestProposalHTTPGateway_EscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/proposals/a%2Fb" {
			t.Errorf("id not escaped: %s", r.URL.EscapedPath())
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	view, err := NewProposalHTTPGateway(srv.URL, time.Second).GetProposalStatus(context.Background(), "a/b")
	if err != nil || view.ID != "" {
		t.Fatalf("expected absent, got %+v err=%v", view, err)
	}
}

func TestProposalHTTPGateway_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	g := NewProposalHTTPGateway(srv.URL, 50*time.Millisecond)
	_, err := g.GetProposalStatus(context.Background(), "p-1")
	if !errors.Is(err, ErrProposalServiceUnavailable) {
		t.Fatalf("expected ErrProposalServiceUnavailable, got %v", err)
	}
}

func TestProposalHTTPGateway_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := NewProposalHTTPGateway(addr, time.Second).GetProposalStatus(context.Background(), "p-1")
	if !errors.Is(err, ErrProposalServiceUnavailable) {
		t.Fatalf("expected ErrProposalServiceUnavailable, got %v", err)
	}
}
