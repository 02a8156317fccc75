package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lvzhenbang/flex-layout/cli/theme"
	"github.com/lvzhenbang/flex-layout/config"
	"github.com/lvzhenbang/flex-layout/errors"
	"github.com/lvzhenbang/flex-layout/schema"
)

// NewValidateCmd validates a config file against the embedded JSON schema
// and the semantic rules the loader enforces.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a flexlayout config file",
		Long: `Checks a config file against the embedded JSON schema and the
semantic rules the loader applies (unique aliases, non-empty media
queries). Without an argument the nearest flexlayout.yml is used.`,
		Example: `  flexlayout validate
  flexlayout validate ./flexlayout.yml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := theme.DefaultTheme

			path, err := resolveValidatePath(cmd, args)
			if err != nil {
				return err
			}

			if err := validateFile(path); err != nil {
				return errors.Wrap(err, errors.ErrCodeConfigValidation,
					fmt.Sprintf("validation failed for %s", path))
			}

			fmt.Printf("%s %s is valid\n", t.Success.Render("✓"), path)
			return nil
		},
	}
	return cmd
}

func resolveValidatePath(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return config.FindConfigFile(cwd)
}

// validateFile runs both schema and semantic validation. The raw document is
// decoded into a generic map first, so the schema sees the snake_case keys
// exactly as written in the file.
func validateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.ConfigNotFound(path)
	}

	var doc map[string]interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML")
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML")
		}
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to re-encode config")
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return err
	}
	if err := validator.ValidateBytes(jsonData); err != nil {
		return err
	}

	// Schema validation passed; now run the loader's semantic checks.
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	return cfg.Validate()
}
