package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aki/gdctl/internal/core/config"
	"github.com/aki/gdctl/internal/core/logger"
	"github.com/aki/gdctl/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long:  "Start a Model Context Protocol server so AI agents can drive the running game",
	RunE:  runMCP,
}

var (
	mcpTransport string
	mcpPort      int
	mcpAuthToken string
)

func init() {
	mcpCmd.Flags().StringVarP(&mcpTransport, "transport", "t", "", "Transport type (stdio, http)")
	mcpCmd.Flags().IntVar(&mcpPort, "port", 0, "Port for HTTP transport")
	mcpCmd.Flags().StringVar(&mcpAuthToken, "auth-token", "", "Bearer token for HTTP transport")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	proj, mb, err := openMailbox()
	if err != nil {
		return err
	}

	cfg, err := config.NewManager(proj.Root).Load()
	if err != nil {
		return err
	}

	// Flags override the config file
	mcpCfg := cfg.MCP
	if mcpTransport != "" {
		mcpCfg.Transport = mcpTransport
	}
	if mcpPort > 0 {
		mcpCfg.HTTP.Port = mcpPort
	}
	if mcpAuthToken != "" {
		mcpCfg.HTTP.Auth.Type = "bearer"
		mcpCfg.HTTP.Auth.Bearer = mcpAuthToken
	}

	// Log to stderr; stdout belongs to the stdio transport
	logOpts := []logger.Option{}
	if debugOutput {
		logOpts = append(logOpts, logger.WithDebug())
	}
	log := logger.New(logOpts...)

	client, err := newClient()
	if err != nil {
		return err
	}

	server := mcp.NewServer(client, mb, mcpCfg, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Start(ctx)
}
