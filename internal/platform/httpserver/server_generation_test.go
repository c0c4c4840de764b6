package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	generationservice "adforge/contexts/campaign-generation/generation-service"
	"adforge/contexts/campaign-generation/generation-service/adapters/memory"
	"adforge/contexts/campaign-generation/generation-service/domain/entities"
	generationerrors "adforge/contexts/campaign-generation/generation-service/domain/errors"
	generationhttp "adforge/contexts/campaign-generation/generation-service/transport/http"
	projectservice "adforge/contexts/project-management/project-service"
)

func testScript() memory.StageScript {
	return memory.StageScript{
		FetchOutput:   entities.FetchOutput{Content: "<html>product</html>", ContentType: "text/html"},
		ExtractOutput: entities.ExtractOutput{Blocks: []entities.TextBlock{{Type: "text", Text: "A product page."}}},
		AnalyzeOutput: entities.AnalyzeOutput{ProductSummary: "A product", Keywords: []string{"product"}},
		AudienceOutput: entities.AudienceOutput{
			AgeRange: "25-45",
		},
		AdsOutput: entities.AdsOutput{Creatives: []entities.AdCreative{{Platform: "facebook", Headline: "Buy"}}},
		PlanOutput: entities.CampaignPlanOutput{
			CampaignName: "Launch",
			Objective:    "Conversions",
			PlatformMix:  []string{"facebook"},
		},
	}
}

func newTestServer(script memory.StageScript) *httptest.Server {
	generation := generationservice.NewInMemoryModule(script, map[string]string{"project-1": "user-1"}, nil)
	projects := projectservice.NewInMemoryModule(nil, nil)
	server := New(generation, projects, nil, ":0")
	return httptest.NewServer(server.Handler())
}

func postGenerate(t *testing.T, ts *httptest.Server, userID, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/v1/campaigns/generate", strings.NewReader(body))
	if err != nil {
		t.Fatalf("build request failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestGenerateEndpointSuccess(t *testing.T) {
	ts := newTestServer(testScript())
	defer ts.Close()

	resp := postGenerate(t, ts, "user-1", `{"project_id":"project-1","url":"https://acme.example"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body generationhttp.GenerateCampaignResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if !body.Success || body.CampaignID == "" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Data.CampaignStrategy.CampaignName != "Launch" {
		t.Fatalf("unexpected strategy name: %q", body.Data.CampaignStrategy.CampaignName)
	}
}

func TestGenerateEndpointValidation(t *testing.T) {
	ts := newTestServer(testScript())
	defer ts.Close()

	resp := postGenerate(t, ts, "user-1", `{"project_id":"project-1"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing url, got %d", resp.StatusCode)
	}
	var body generationhttp.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body failed: %v", err)
	}
	if body.Error == "" {
		t.Fatalf("expected error message")
	}
}

func TestGenerateEndpointAuth(t *testing.T) {
	ts := newTestServer(testScript())
	defer ts.Close()

	resp := postGenerate(t, ts, "", `{"project_id":"project-1","url":"https://acme.example"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user header, got %d", resp.StatusCode)
	}

	resp = postGenerate(t, ts, "user-2", `{"project_id":"project-1","url":"https://acme.example"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", resp.StatusCode)
	}

	resp = postGenerate(t, ts, "user-1", `{"project_id":"unknown","url":"https://acme.example"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown project, got %d", resp.StatusCode)
	}
}

func TestGenerateEndpointStageFailure(t *testing.T) {
	script := testScript()
	script.FetchErr = &generationerrors.StageError{Tool: "fetch_url", Err: errors.New("connection refused")}
	ts := newTestServer(script)
	defer ts.Close()

	resp := postGenerate(t, ts, "user-1", `{"project_id":"project-1","url":"https://acme.example"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502 for stage failure, got %d", resp.StatusCode)
	}
	var body generationhttp.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body failed: %v", err)
	}
	if !strings.Contains(body.Error, "fetch_url") {
		t.Fatalf("expected failing tool in message, got %q", body.Error)
	}
}

func TestCampaignReadEndpoints(t *testing.T) {
	ts := newTestServer(testScript())
	defer ts.Close()

	resp := postGenerate(t, ts, "user-1", `{"project_id":"project-1","url":"https://acme.example"}`)
	var created generationhttp.GenerateCampaignResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	resp.Body.Close()

	getResp, err := http.Get(ts.URL + "/v1/campaigns/" + created.CampaignID)
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", getResp.StatusCode)
	}
	var campaign generationhttp.CampaignResponse
	if err := json.NewDecoder(getResp.Body).Decode(&campaign); err != nil {
		t.Fatalf("decode campaign failed: %v", err)
	}
	if campaign.CampaignID != created.CampaignID {
		t.Fatalf("campaign id mismatch: %s vs %s", campaign.CampaignID, created.CampaignID)
	}

	listResp, err := http.Get(ts.URL + "/v1/projects/project-1/campaigns")
	if err != nil {
		t.Fatalf("list campaigns failed: %v", err)
	}
	defer listResp.Body.Close()
	var listed generationhttp.ListCampaignsResponse
	if err := json.NewDecoder(listResp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list failed: %v", err)
	}
	if len(listed.Campaigns) != 1 {
		t.Fatalf("expected 1 campaign, got %d", len(listed.Campaigns))
	}

	sourcesResp, err := http.Get(ts.URL + "/v1/projects/project-1/sources")
	if err != nil {
		t.Fatalf("list sources failed: %v", err)
	}
	defer sourcesResp.Body.Close()
	var sources generationhttp.ListSourcesResponse
	if err := json.NewDecoder(sourcesResp.Body).Decode(&sources); err != nil {
		t.Fatalf("decode sources failed: %v", err)
	}
	if len(sources.Sources) != 1 || sources.Sources[0].Status != "completed" {
		t.Fatalf("unexpected sources: %+v", sources.Sources)
	}
}
