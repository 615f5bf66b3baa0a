package response

import (
	"encoding/json"
	"testing"
	"time"

	"seguros_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromProposal(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Proposal{
		ID:             "p-1",
		ClientName:     "A",
		ClientDocument: "doc",
		InsuredValue:   decimal.RequireFromString("1500.50"),
		CreatedAt:      now,
		Status:         entities.ProposalStatusApproved,
	}

	res := FromProposal(p)
	if res.ID != "p-1" || res.ClientName != "A" || res.ClientDocument != "doc" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Status != "Approved" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected status/date: %+v", res)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["insured_value"] != "1500.5" {
		t.Fatalf("unexpected insured_value: %v", body["insured_value"])
	}
	if body["status"] != "Approved" {
		t.Fatalf("unexpected status: %v", body["status"])
	}
}

func TestFromProposals_Empty(t *testing.T) {
	res := FromProposals(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}
}
