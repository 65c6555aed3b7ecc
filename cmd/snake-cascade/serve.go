package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-cascade/internal/platform/tui"
)

var (
	flagSSHAddr         string
	flagHostKey         string
	flagIdleTimeout     int
	flagServeDifficulty string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play remotely.
Each connection gets its own engine and run; finished runs land in the
server's shared run database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake-cascade/host_key

Examples:
  snake-cascade serve                           # Listen on :23235 with auto-generated key
  snake-cascade serve --ssh :2222               # Listen on port 2222
  snake-cascade serve --host-key ./my_host_key  # Use specific host key
  snake-cascade serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeDifficulty, "difficulty", "", "Difficulty preset for all sessions")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig(flagServeDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sshCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(sshCfg, cfg.EngineParams(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting SSH server on %s\n", sshCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
