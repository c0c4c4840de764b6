package services

// Usage is a length-based token estimate with its derived cost. The counts are
// approximations, not billing-grade figures.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Cost             float64
}

// Rates is the per-million-token price pair applied uniformly across one run.
type Rates struct {
	PromptPerMillion     float64
	CompletionPerMillion float64
}

var DefaultRates = Rates{
	PromptPerMillion:     2.50,
	CompletionPerMillion: 10.00,
}

type UsageEstimator struct {
	Rates Rates
}

// Estimate derives token counts from the serialized request and response text.
// Same bytes in, same estimate out.
func (e UsageEstimator) Estimate(request, response []byte) Usage {
	prompt := approxTokens(len(request))
	completion := approxTokens(len(response))
	return Usage{
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      prompt + completion,
		Cost: float64(prompt)/1_000_000*e.Rates.PromptPerMillion +
			float64(completion)/1_000_000*e.Rates.CompletionPerMillion,
	}
}

// approxTokens uses the usual ~4 characters per token heuristic, rounding up.
func approxTokens(chars int) int {
	if chars <= 0 {
		return 0
	}
	return (chars + 3) / 4
}
