package unit

import (
	"math"
	"testing"

	"adforge/contexts/campaign-generation/generation-service/domain/services"
)

func TestUsageEstimateFormula(t *testing.T) {
	estimator := services.UsageEstimator{Rates: services.DefaultRates}

	request := []byte(`{"url":"https://a"}`)   // 19 chars -> 5 tokens
	response := []byte(`{"name":"Campaign"}`)  // 19 chars -> 5 tokens

	usage := estimator.Estimate(request, response)
	if usage.PromptTokens != 5 {
		t.Fatalf("expected 5 prompt tokens, got %d", usage.PromptTokens)
	}
	if usage.CompletionTokens != 5 {
		t.Fatalf("expected 5 completion tokens, got %d", usage.CompletionTokens)
	}
	if usage.TotalTokens != 10 {
		t.Fatalf("expected 10 total tokens, got %d", usage.TotalTokens)
	}

	want := 5.0/1_000_000*2.50 + 5.0/1_000_000*10.00
	if math.Abs(usage.Cost-want) > 1e-12 {
		t.Fatalf("expected cost %g, got %g", want, usage.Cost)
	}
}

func TestUsageEstimateRoundsUp(t *testing.T) {
	estimator := services.UsageEstimator{Rates: services.DefaultRates}

	usage := estimator.Estimate([]byte("a"), nil)
	if usage.PromptTokens != 1 {
		t.Fatalf("expected a single character to count as one token, got %d", usage.PromptTokens)
	}
	if usage.CompletionTokens != 0 {
		t.Fatalf("expected zero completion tokens for empty response, got %d", usage.CompletionTokens)
	}
}

func TestUsageEstimateDeterministic(t *testing.T) {
	estimator := services.UsageEstimator{Rates: services.Rates{PromptPerMillion: 1, CompletionPerMillion: 2}}

	request := []byte("some serialized request payload")
	response := []byte("some serialized response payload")

	first := estimator.Estimate(request, response)
	second := estimator.Estimate(request, response)
	if first != second {
		t.Fatalf("expected identical estimates, got %+v and %+v", first, second)
	}
}
