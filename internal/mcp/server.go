package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"

	"github.com/fitme-app/fitme/pkg"
)

// SecretHeader carries the plain MCP secret, checked against the configured bcrypt hash.
const SecretHeader = "X-MCP-Secret"

// NewServer builds an MCP server exposing the daily summary and workout stats.
// Mounted at /mcp on the main service and run over stdio by cmd/fitme_mcp.
func NewServer(engine aggregator) *mcp.Server {
	h := NewHandler(engine)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fitme-progress",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_daily_summary",
		Description: "Returns the food and water a user logged on one calendar day, with calorie, macro and water totals next to the user targets. Args: user_id (UUID), date (YYYY-MM-DD).",
	}, h.GetDailySummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_stats",
		Description: "Returns the current workout streak, workouts this month, monthly consistency percentage, total workouts and the distinct workout dates (most recent first) of a user. Arg: user_id (UUID).",
	}, h.GetWorkoutStatsTool())

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP behind the secret check.
func NewHTTPHandler(server *mcp.Server, secretHash string) http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	return SecretGuard(secretHash, streamable)
}

// SecretGuard rejects requests without the right secret. With no hash configured
// every request is rejected.
func SecretGuard(secretHash string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		if !pkg.CheckSecretHash(r.Header.Get(SecretHeader), secretHash) {
			ip, _ := pkg.ClientIP(r)
			log.Warnf("mcp: unauthorized request from [%s]", ip)
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
