package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "allies",
	Short: "Digital Allies landing panel: static build and live server",
	Long: `Allies renders the Digital Allies landing panel: a title, a description,
three feature tiles and a click counter. It can emit a static build for
hosting under any URL path, or serve the panel live with the counter
driven over a WebSocket.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".allies.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
