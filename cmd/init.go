package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/digital-allies/allies/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(cfgFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}

		if _, err := config.RunWizard(cfgFile); err != nil {
			return err
		}
		fmt.Println("Next: run `allies build` for a static build or `allies serve` to run it live.")
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
