package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "seguros_xpto/docs/hiring"
	_ "seguros_xpto/docs/proposal"
	"seguros_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func TestSwaggerDocs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		router *gin.Engine
		path   string
		title  string
	}{
		{NewProposalRouter(handlers.NewProposalHandler(nil, nil)), "/proposals/{id}/status", "Proposal Service API"},
		{NewHiringRouter(handlers.NewHiringHandler(nil, nil)), "/hiring", "Hiring Service API"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
		w := httptest.NewRecorder()
		tc.router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tc.title, w.Code)
		}

		var doc struct {
			Info struct {
				Title string `json:"title"`
			} `json:"info"`
			Paths map[string]any `json:"paths"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
			t.Fatalf("%s: invalid json: %v", tc.title, err)
		}
		if doc.Info.Title != tc.title {
			t.Fatalf("expected title %q, got %q", tc.title, doc.Info.Title)
		}
		if _, ok := doc.Paths[tc.path]; !ok {
			t.Fatalf("%s: missing path %s", tc.title, tc.path)
		}
	}
}
