package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaxis-ai/reportrunner/internal/domain"
)

func testDocument() *domain.Document {
	doc := domain.NewDocument()
	doc.Metadata = domain.Metadata{
		GeneratedAt: "2026-08-24T12:00:00Z",
		RunID:       "run-1",
		TotalBlocks: 3,
		Errors:      1,
		TotalTokens: 1500,
	}
	doc.ExecutiveSummaries["executive_summary_moderate_v1"] = "summary"
	doc.Synergies["synergy_demand_forecast_inventory_plann"] = "synergy text"
	doc.StrategicBlocks["why_now"] = "ERROR: rate limited"
	return doc
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(NewServer(testDocument()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestReportMeta(t *testing.T) {
	srv := httptest.NewServer(NewServer(testDocument()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/report/meta")
	if err != nil {
		t.Fatalf("GET /api/report/meta: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Metadata domain.Metadata `json:"metadata"`
		Buckets  map[string]int  `json:"buckets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Metadata.RunID != "run-1" {
		t.Errorf("RunID = %q, want run-1", body.Metadata.RunID)
	}
	if body.Metadata.TotalTokens != 1500 {
		t.Errorf("TotalTokens = %d, want 1500", body.Metadata.TotalTokens)
	}
	if body.Buckets["synergies"] != 1 {
		t.Errorf("synergies count = %d, want 1", body.Buckets["synergies"])
	}
	if body.Buckets["roadmaps"] != 0 {
		t.Errorf("roadmaps count = %d, want 0", body.Buckets["roadmaps"])
	}
	if len(body.Buckets) != len(domain.Buckets()) {
		t.Errorf("bucket count keys = %d, want %d", len(body.Buckets), len(domain.Buckets()))
	}
}

func TestReportBucket(t *testing.T) {
	srv := httptest.NewServer(NewServer(testDocument()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/report/buckets/synergies")
	if err != nil {
		t.Fatalf("GET bucket: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var blocks map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&blocks); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if blocks["synergy_demand_forecast_inventory_plann"] != "synergy text" {
		t.Errorf("blocks = %v", blocks)
	}
}

func TestReportBucketUnknown(t *testing.T) {
	srv := httptest.NewServer(NewServer(testDocument()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/report/buckets/no_such_bucket")
	if err != nil {
		t.Fatalf("GET bucket: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestReportDocument(t *testing.T) {
	srv := httptest.NewServer(NewServer(testDocument()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/report")
	if err != nil {
		t.Fatalf("GET /api/report: %v", err)
	}
	defer resp.Body.Close()

	var doc domain.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Metadata.TotalBlocks != 3 {
		t.Errorf("TotalBlocks = %d, want 3", doc.Metadata.TotalBlocks)
	}
	if doc.StrategicBlocks["why_now"] != "ERROR: rate limited" {
		t.Errorf("strategic_blocks = %v", doc.StrategicBlocks)
	}
}
