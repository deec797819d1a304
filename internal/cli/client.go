package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"termfolio/internal/config"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const defaultTimeout = 30 * time.Second

// Client calls the control surface tools of a running termfolio.
type Client struct {
	endpoint string
	client   *client.Client
	timeout  time.Duration

	// newClient builds the transport; tests swap it for an in-process one.
	newClient func() (*client.Client, error)
}

// EndpointFromConfig returns the SSE endpoint of the configured control server.
func EndpointFromConfig(cfg config.Config) string {
	return fmt.Sprintf("http://%s/sse", cfg.MCP.Addr())
}

// NewClient creates a client for the SSE endpoint of a running control server.
func NewClient(endpoint string) *Client {
	c := &Client{endpoint: endpoint, timeout: defaultTimeout}
	c.newClient = func() (*client.Client, error) {
		return client.NewSSEMCPClient(c.endpoint)
	}
	return c
}

// NewInProcessClient creates a client that talks to srv without a network hop.
func NewInProcessClient(srv *server.MCPServer) *Client {
	return &Client{
		endpoint:  "in-process",
		timeout:   defaultTimeout,
		newClient: func() (*client.Client, error) { return client.NewInProcessClient(srv) },
	}
}

// Endpoint returns the server address.
func (c *Client) Endpoint() string { return c.endpoint }

// Connect establishes the session with the control server.
func (c *Client) Connect(ctx context.Context) error {
	mcpClient, err := c.newClient()
	if err != nil {
		return fmt.Errorf("failed to create client for %s: %w", c.endpoint, err)
	}

	if err := mcpClient.Start(ctx); err != nil {
		mcpClient.Close()
		return fmt.Errorf("failed to connect to %s: %w", c.endpoint, err)
	}

	if err := c.initialize(ctx, mcpClient); err != nil {
		mcpClient.Close()
		return fmt.Errorf("initialization failed: %w", err)
	}

	c.client = mcpClient
	return nil
}

// CallTool executes a tool and returns the result
func (c *Client) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.CallTool(timeoutCtx, req)
	if err != nil {
		return nil, fmt.Errorf("tool call failed: %w", err)
	}
	return result, nil
}

// CallToolSimple executes a tool and returns its text content. A tool
// error is returned as an error.
func (c *Client) CallToolSimple(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	result, err := c.CallTool(ctx, name, args)
	if err != nil {
		return "", err
	}

	text := resultText(result)
	if result.IsError {
		return "", fmt.Errorf("tool error: %s", text)
	}
	return text, nil
}

// CallToolJSON executes a tool and decodes its JSON text content. Plain
// text results are returned as a string.
func (c *Client) CallToolJSON(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	text, err := c.CallToolSimple(ctx, name, args)
	if err != nil {
		return nil, err
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return text, nil
	}
	return decoded, nil
}

// ListTools returns the tools the server offers.
func (c *Client) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.client.ListTools(timeoutCtx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list tools failed: %w", err)
	}
	return res.Tools, nil
}

// Close closes the connection
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// initialize performs the MCP protocol handshake
func (c *Client) initialize(ctx context.Context, mcpClient *client.Client) error {
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{
		Name:    "termfolio-ctl",
		Version: "1.0.0",
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := mcpClient.Initialize(timeoutCtx, req)
	return err
}

func resultText(result *mcp.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			parts = append(parts, textContent.Text)
		}
	}
	return strings.Join(parts, "\n")
}
