package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/samzong/gitcz/internal/commit"
	"github.com/samzong/gitcz/internal/config"
	"github.com/samzong/gitcz/internal/stringsutil"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage gitcz configuration",
		Long:  `Manage gitcz configuration, including the commit type list and commit options`,
	}

	configGetCmd = &cobra.Command{
		Use:   "get",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to render configuration: %w", err)
			}
			fmt.Fprintf(outWriter(), "# %s\n%s", config.ConfigFilePath(), out)
			return nil
		},
	}

	configSetCmd = &cobra.Command{
		Use:   "set",
		Short: "Set configuration item",
	}

	configSetTypesCmd = &cobra.Command{
		Use:   "types [type,type,...]",
		Short: "Set the commit types offered for selection",
		Long: `Set the commit types offered for selection, as a comma-separated list.

Example:
  gitcz config set types build,chore,ci,docs,feat,fix,perf,refactor,revert,style,test`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			types := commit.NormalizeTypes(stringsutil.SplitNonEmpty(args[0], ","))
			if err := saveValue("types", types); err != nil {
				return err
			}
			fmt.Fprintf(outWriter(), "Commit types set to: %v\n", types)
			return nil
		},
	}

	configSetSignoffCmd = &cobra.Command{
		Use:   "signoff [true|false]",
		Short: "Add a Signed-off-by trailer to commits",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return setBool("signoff", args[0])
		},
	}

	configSetAccessibleCmd = &cobra.Command{
		Use:   "accessible [true|false]",
		Short: "Use line-based prompts suitable for screen readers",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return setBool("accessible", args[0])
		},
	}

	configSetMaxSubjectCmd = &cobra.Command{
		Use:   "max-subject-length [n]",
		Short: "Set the maximum subject length in characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid subject length: %s", args[0])
			}
			if err := saveValue("max_subject_length", n); err != nil {
				return err
			}
			fmt.Fprintf(outWriter(), "Maximum subject length set to: %d\n", n)
			return nil
		},
	}
)

func init() {
	configSetCmd.AddCommand(configSetTypesCmd)
	configSetCmd.AddCommand(configSetSignoffCmd)
	configSetCmd.AddCommand(configSetAccessibleCmd)
	configSetCmd.AddCommand(configSetMaxSubjectCmd)

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

func setBool(key, raw string) error {
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %s", key, raw)
	}
	if err := saveValue(key, value); err != nil {
		return err
	}
	fmt.Fprintf(outWriter(), "%s set to: %t\n", key, value)
	return nil
}

func saveValue(key string, value any) error {
	if configErr != nil {
		return fmt.Errorf("configuration error: %w", configErr)
	}
	config.SetConfigValue(key, value)
	if err := config.SaveConfig(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	return nil
}
