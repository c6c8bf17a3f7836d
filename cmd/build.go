package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digital-allies/allies/internal/config"
	"github.com/digital-allies/allies/internal/progress"
	"github.com/digital-allies/allies/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Emit the static build",
	Long: `Renders the panel to index.html and writes it, the bundled assets and
the public directory into the output directory. Asset references follow
base_path: "./" (the default) keeps them relative for hosting under a
sub-path.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().String("base", "", "override base_path (e.g. ./, /, /allies/)")
	buildCmd.Flags().String("public-include", "", "override public_include (comma-separated globs)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("output") {
		cfg.OutputDir, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("base") {
		cfg.BasePath, _ = cmd.Flags().GetString("base")
		if err := config.ValidateBasePath(cfg.BasePath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("public-include") {
		include, _ := cmd.Flags().GetString("public-include")
		cfg.PublicInclude = config.SplitList(include)
	}

	log := newLogger(cfg)
	log.Debug().Str("output", cfg.OutputDir).Str("base_path", cfg.BasePath).Msg("starting build")

	builder := site.NewBuilder(cfg)
	builder.Reporter = progress.NewReporter()
	res, err := builder.Build()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Static build written to %s (%d files, base %q)\n", res.OutputDir, len(res.Files), cfg.BasePath)
	return nil
}
