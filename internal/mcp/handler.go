package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fitme-app/fitme/internal/aggregation"
)

type aggregator interface {
	DailySummary(ctx context.Context, userID, date string) (*aggregation.DailySummary, error)
	WorkoutStats(ctx context.Context, userID string) (*aggregation.WorkoutStats, error)
}

// Handler turns MCP tool calls into engine calls and formats the result as JSON text.
type Handler struct {
	engine aggregator
}

func NewHandler(engine aggregator) *Handler {
	return &Handler{
		engine: engine,
	}
}

// DailySummaryInput is the input for get_daily_summary.
type DailySummaryInput struct {
	UserID string `json:"user_id" jsonschema:"User id (UUID)"`
	Date   string `json:"date" jsonschema:"Calendar date (YYYY-MM-DD)"`
}

func (h *Handler) GetDailySummaryTool() func(context.Context, *mcp.CallToolRequest, DailySummaryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DailySummaryInput) (*mcp.CallToolResult, any, error) {
		summary, err := h.engine.DailySummary(ctx, in.UserID, in.Date)
		if err != nil {
			return errorResult("Error getting daily summary", err), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}

// WorkoutStatsInput is the input for get_workout_stats.
type WorkoutStatsInput struct {
	UserID string `json:"user_id" jsonschema:"User id (UUID)"`
}

func (h *Handler) GetWorkoutStatsTool() func(context.Context, *mcp.CallToolRequest, WorkoutStatsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutStatsInput) (*mcp.CallToolResult, any, error) {
		stats, err := h.engine.WorkoutStats(ctx, in.UserID)
		if err != nil {
			return errorResult("Error getting workout stats", err), nil, nil
		}
		return jsonResult(stats), nil, nil
	}
}

func errorResult(prefix string, err error) *mcp.CallToolResult {
	text := prefix + ": " + err.Error()
	if !aggregation.IsInvalidInput(err) {
		// keep store internals out of the client
		text = prefix + ": internal error"
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
			IsError: true,
		}
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}
