package mcpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"adforge/contexts/campaign-generation/generation-service/domain/entities"
	domainerrors "adforge/contexts/campaign-generation/generation-service/domain/errors"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	toolFetch         = "fetch_url"
	toolExtract       = "extract_content"
	toolAnalyze       = "analyze_product"
	toolBuildAudience = "build_audience"
	toolGenerateAds   = "generate_ads"
	toolBuildCampaign = "build_campaign"
)

// Invoker is the production StageInvoker. It dispatches each typed stage call
// to a named MCP tool with a JSON argument payload and decodes the content
// envelope back into the stage's typed output.
type Invoker struct {
	client    *mcpclient.Client
	namespace string
	timeout   time.Duration
	logger    *slog.Logger
}

// Dial connects and initializes an MCP client against the tool server.
func Dial(ctx context.Context, serverURL string) (*mcpclient.Client, error) {
	client, err := mcpclient.NewStreamableHttpClient(serverURL)
	if err != nil {
		return nil, err
	}
	if err := client.Start(ctx); err != nil {
		return nil, err
	}
	request := mcp.InitializeRequest{}
	request.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	request.Params.ClientInfo = mcp.Implementation{
		Name:    "adforge",
		Version: "1.0.0",
	}
	if _, err := client.Initialize(ctx, request); err != nil {
		return nil, err
	}
	return client, nil
}

func NewInvoker(client *mcpclient.Client, namespace string, timeout time.Duration, logger *slog.Logger) *Invoker {
	if namespace == "" {
		namespace = "adforge"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Invoker{
		client:    client,
		namespace: namespace,
		timeout:   timeout,
		logger:    logger,
	}
}

func (inv *Invoker) Fetch(ctx context.Context, in entities.FetchInput) (entities.FetchOutput, error) {
	raw, err := inv.invoke(ctx, toolFetch, in)
	if err != nil {
		return entities.FetchOutput{}, err
	}
	var out entities.FetchOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return entities.FetchOutput{}, nil
	}
	return out, nil
}

func (inv *Invoker) Extract(ctx context.Context, in entities.ExtractInput) (entities.ExtractOutput, error) {
	raw, err := inv.invoke(ctx, toolExtract, in)
	if err != nil {
		return entities.ExtractOutput{}, err
	}
	var out entities.ExtractOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return entities.ExtractOutput{}, nil
	}
	return out, nil
}

func (inv *Invoker) Analyze(ctx context.Context, in entities.AnalyzeInput) (entities.AnalyzeOutput, error) {
	raw, err := inv.invoke(ctx, toolAnalyze, in)
	if err != nil {
		return entities.AnalyzeOutput{}, err
	}
	var out entities.AnalyzeOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return entities.AnalyzeOutput{}, nil
	}
	return out, nil
}

func (inv *Invoker) BuildAudience(ctx context.Context, in entities.AudienceInput) (entities.AudienceOutput, error) {
	raw, err := inv.invoke(ctx, toolBuildAudience, in)
	if err != nil {
		return entities.AudienceOutput{}, err
	}
	var out entities.AudienceOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return entities.AudienceOutput{}, nil
	}
	return out, nil
}

func (inv *Invoker) GenerateAds(ctx context.Context, in entities.AdsInput) (entities.AdsOutput, error) {
	raw, err := inv.invoke(ctx, toolGenerateAds, in)
	if err != nil {
		return entities.AdsOutput{}, err
	}
	var out entities.AdsOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return entities.AdsOutput{}, nil
	}
	return out, nil
}

func (inv *Invoker) BuildCampaign(ctx context.Context, in entities.CampaignPlanInput) (entities.CampaignPlanOutput, error) {
	raw, err := inv.invoke(ctx, toolBuildCampaign, in)
	if err != nil {
		return entities.CampaignPlanOutput{}, err
	}
	var out entities.CampaignPlanOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return entities.CampaignPlanOutput{}, nil
	}
	return out, nil
}

// invoke performs one tools/call round trip. Transport failures and
// tool-reported errors both come back as a StageError carrying the tool name
// and the underlying message. No retries happen here.
func (inv *Invoker) invoke(ctx context.Context, tool string, args any) (json.RawMessage, error) {
	callCtx, cancel := context.WithTimeout(ctx, inv.timeout)
	defer cancel()

	request := mcp.CallToolRequest{}
	request.Params.Name = inv.namespace + "." + tool
	request.Params.Arguments = args

	started := time.Now()
	result, err := inv.client.CallTool(callCtx, request)
	if err != nil {
		return nil, &domainerrors.StageError{Tool: tool, Err: err}
	}
	if result.IsError {
		return nil, &domainerrors.StageError{Tool: tool, Err: errors.New(firstText(result))}
	}

	inv.logger.Debug("tool call completed",
		"event", "tool_call_completed",
		"module", "campaign-generation/generation-service",
		"layer", "adapter",
		"tool", tool,
		"elapsed", time.Since(started).String(),
	)
	return decodePayload(result), nil
}

// decodePayload extracts the first content block and parses its text field as
// JSON. Absent or unparsable text degrades to an empty object instead of an
// error; the stage still counts as succeeded.
func decodePayload(result *mcp.CallToolResult) json.RawMessage {
	text := firstText(result)
	if text == "" {
		return json.RawMessage("{}")
	}
	if !json.Valid([]byte(text)) {
		return json.RawMessage("{}")
	}
	return json.RawMessage(text)
}

func firstText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	if text, ok := mcp.AsTextContent(result.Content[0]); ok {
		return text.Text
	}
	return ""
}
