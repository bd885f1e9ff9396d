package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"smarttype-panel/app"
	"smarttype-panel/config"
	"smarttype-panel/log"
	"smarttype-panel/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	version = "1.0.0"

	rootCmd = &cobra.Command{
		Use:   "smarttype-panel",
		Short: "SmartType Panel - a terminal configuration panel for the SmartType daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			return app.Run(context.Background())
		},
	}

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the SmartType daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServiceVerb("start")
		},
	}

	stopCmd = &cobra.Command{
		Use:   "stop",
		Short: "Stop the SmartType daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServiceVerb("stop")
		},
	}

	restartCmd = &cobra.Command{
		Use:   "restart",
		Short: "Restart the SmartType daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServiceVerb("restart")
		},
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Print the SmartType daemon status",
		Run: func(cmd *cobra.Command, args []string) {
			controller := service.NewController()
			fmt.Println(controller.Status(context.Background()))
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Restore the default settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			path, err := config.SettingsPath()
			if err != nil {
				return err
			}
			fmt.Printf("This overwrites %s with the built-in defaults. Continue? [y/N] ", path)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(strings.ToLower(answer)) != "y" {
				fmt.Println("Aborted")
				return nil
			}

			if err := config.Save(config.DefaultSettings()); err != nil {
				return fmt.Errorf("failed to reset settings: %w", err)
			}
			fmt.Println("Settings have been reset to defaults")

			controller := service.NewController()
			if err := controller.Restart(context.Background()); err != nil {
				fmt.Printf("Warning: daemon restart failed: %v\n", err)
			}
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			settings, err := config.Load()
			if err != nil {
				fmt.Printf("Warning: %v\n", err)
			}

			path, perr := config.SettingsPath()
			if perr != nil {
				return perr
			}
			data, _ := yaml.Marshal(settings)

			fmt.Printf("Settings: %s\n%s", path, data)
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of smarttype-panel",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("smarttype-panel version %s\n", version)
		},
	}
)

// runServiceVerb drives one service operation from the command line and
// reports the resulting status.
func runServiceVerb(verb string) error {
	log.Initialize()
	defer log.Close()

	ctx := context.Background()
	controller := service.NewController()

	var err error
	switch verb {
	case "start":
		err = controller.Start(ctx)
	case "stop":
		err = controller.Stop(ctx)
	case "restart":
		err = controller.Restart(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Daemon status: %s\n", controller.Status(ctx))
	return nil
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
