package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/invaders/internal/config"
)

// stdinPath makes config --effective read the YAML from stdin.
const stdinPath = "-"

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the tuning YAML",
	Long: `Prints the embedded default tuning, ready to be saved and edited.

With --effective, prints the tuning that would actually be used after the
--config file or the search path has been applied. Use --config - to check
YAML piped on stdin.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved tuning instead of the defaults")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if !flagEffective {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := loadEffective(cmd.InOrStdin())
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}

// loadEffective resolves the tuning named by --config, reading it from in
// when the path is "-".
func loadEffective(in io.Reader) (config.InvadersConfig, string, error) {
	if flagConfig != stdinPath {
		return config.LoadInvaders(flagConfig)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return config.InvadersConfig{}, "", fmt.Errorf("config: read stdin: %w", err)
	}
	cfg, err := config.Parse(data)
	return cfg, "stdin", err
}
