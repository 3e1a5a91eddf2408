// Package cmd contains the command line applications for the project.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yeisme/schoolvault/pkg/app"
)

var (
	// configPath 配置文件或目录，空时按默认搜索路径查找.
	configPath string
	debug      bool

	rootCmd = &cobra.Command{
		Use:   "schoolvault",
		Short: "School portal content service",
		Long:  "Schoolvault serves the school portal content API: news, events, albums, results, students and teachers, with pluggable upload storage.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
)

func runServe() error {
	return app.NewApp(configPath).Run()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file or directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose debug output")

	rootCmd.AddCommand(serveCmd)
	registerConfigsCommands()
	registerDBCommands()
	registerKVCommands()
	registerMQCommands()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
