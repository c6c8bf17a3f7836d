package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// hostingTargets maps a hosting choice to the base_path it needs.
var hostingTargets = []struct {
	Label    string
	BasePath string
}{
	{Label: "static pages under a sub-path (relative assets)", BasePath: DefaultBasePath},
	{Label: "site root (root-absolute assets)", BasePath: "/"},
	{Label: "custom prefix or CDN URL", BasePath: ""},
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to allies! Let's configure your panel.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Title.
	titlePrompt := promptui.Prompt{
		Label:   "Panel title",
		Default: defaults.Title,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("title is required")
			}
			return nil
		},
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 2. Description.
	descPrompt := promptui.Prompt{
		Label:   "Description (Markdown)",
		Default: defaults.Description,
	}
	description, err := descPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}

	// 3. Hosting target -> base path.
	items := make([]string, len(hostingTargets))
	for i, t := range hostingTargets {
		items[i] = t.Label
	}
	hostPrompt := promptui.Select{
		Label: "Where will the build be hosted",
		Items: items,
	}
	hostIdx, _, err := hostPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("hosting selection: %w", err)
	}
	basePath := hostingTargets[hostIdx].BasePath
	if basePath == "" {
		basePrompt := promptui.Prompt{
			Label:    "Base path (e.g. /allies/ or https://cdn.example.com/)",
			Validate: ValidateBasePath,
		}
		basePath, err = basePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("base path: %w", err)
		}
	}

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static build",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	cfg := defaults
	cfg.Title = strings.TrimSpace(title)
	cfg.Description = description
	cfg.BasePath = basePath
	cfg.OutputDir = outputDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// SplitList splits a comma-separated string and trims whitespace.
func SplitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
