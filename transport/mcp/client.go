package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cfour-labs/connect4-server/game/engine"
	"github.com/cfour-labs/connect4-server/game/service"
	"github.com/cfour-labs/connect4-server/solver"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Connect Four Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Connect Four Server - MCP Interface

This is a thin client that proxies all requests to the REST API server.

Games are played live over the WebSocket endpoint; these tools give
read-only access to running games plus the position analyser.

AVAILABLE TOOLS:
- analyse_position: Score every column of a position with the external solver
- list_games: List all games on the server
- game_state: Get one game's board, turn and result

Positions are move strings using 1-based column digits, e.g. "4453"
means column 4, then 4, then 5, then 3.`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "analyse_position",
		Description: "Evaluate every column of a Connect Four position",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"position": map[string]interface{}{
					"type":        "string",
					"description": "Moves played so far as 1-based column digits, e.g. \"4453\". Empty for the starting position.",
				},
			},
		},
	}, c.handleAnalysePosition)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_games",
		Description: "List all games on the server",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListGames)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current state of a game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID to retrieve",
				},
			},
			Required: []string{"game_id"},
		},
	}, c.handleGameState)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleAnalysePosition(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	position, _ := args["position"].(string)

	path := "/analyse"
	if position != "" {
		path += "/" + position
	}

	var analysis solver.Analysis
	err := c.apiCall("GET", path, nil, &analysis)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatAnalysis(&analysis)), nil
}

func (c *Client) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count int                 `json:"count"`
		Games []*service.GameView `json:"games"`
	}

	err := c.apiCall("GET", "/api/games", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Games (%d):\n\n", response.Count)
	for _, g := range response.Games {
		result += fmt.Sprintf("- %s: %s vs %s (%s)\n", g.ID, g.Player1Name, g.Player2Name, g.Status)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	var view service.GameView
	err := c.apiCall("GET", fmt.Sprintf("/api/games/%s", gameID), nil, &view)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameView(&view)), nil
}

// Formatting helpers

func formatGameView(view *service.GameView) string {
	if view == nil {
		return "No game state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Game: %s\n", view.ID))
	result.WriteString(fmt.Sprintf("%s (X) vs %s (O)\n\n", view.Player1Name, view.Player2Name))

	// Row 0 is the top row; print in storage order.
	for r := 0; r < engine.Rows; r++ {
		for c := 0; c < engine.Cols; c++ {
			switch view.Board[r][c] {
			case engine.One:
				result.WriteString("X")
			case engine.Two:
				result.WriteString("O")
			default:
				result.WriteString(".")
			}
		}
		result.WriteString("\n")
	}
	result.WriteString("1234567\n")

	if view.Moves != "" {
		result.WriteString(fmt.Sprintf("\nMoves: %s\n", view.Moves))
	}

	switch view.Status {
	case engine.StatusActive:
		turn := view.Player1Name
		if view.CurrentTurn == view.Player2 {
			turn = view.Player2Name
		}
		result.WriteString(fmt.Sprintf("\nTurn: %s\n", turn))
	case engine.StatusDraw:
		result.WriteString("\nResult: draw\n")
	default:
		winner := view.Player1Name
		if view.Winner != nil && *view.Winner == view.Player2 {
			winner = view.Player2Name
		}
		result.WriteString(fmt.Sprintf("\nResult: %s wins\n", winner))
	}

	return result.String()
}

func formatAnalysis(analysis *solver.Analysis) string {
	var result strings.Builder

	position := analysis.Position
	if position == "" {
		position = "(start)"
	}
	result.WriteString(fmt.Sprintf("Position: %s\n\n", position))

	columns := make([]string, 0, len(analysis.Analysis.Columns))
	for column := range analysis.Analysis.Columns {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	for _, column := range columns {
		eval := analysis.Analysis.Columns[column]
		switch {
		case !eval.Valid:
			result.WriteString(fmt.Sprintf("Column %s: full\n", column))
		case eval.Score == nil:
			result.WriteString(fmt.Sprintf("Column %s: no score\n", column))
		default:
			result.WriteString(fmt.Sprintf("Column %s: %d\n", column, *eval.Score))
		}
	}

	return result.String()
}
