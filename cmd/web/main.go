package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/myluxcars/fleetcast/pkg/server"
	"github.com/myluxcars/fleetcast/pkg/services/fleet"
	"github.com/myluxcars/fleetcast/pkg/services/forecast"
	"github.com/myluxcars/fleetcast/pkg/services/project"
	projectstore "github.com/myluxcars/fleetcast/pkg/store/project"
)

const defaultProjectFile = "fleet_project.json"

var projectPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the fleet projection web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&projectPath, "project", "p", defaultProjectFile,
		"Path to the default project JSON file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	manager := project.NewManager(ctx, project.Dependencies{
		Engine: forecast.NewEngine(),
		Fleet:  fleet.NewService(),
		Store:  projectstore.NewStore(),
	}, projectPath)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Manager: manager,
		},
	})

	return api.Start()
}
