package cmds

import (
	"context"
	"errors"
	"fmt"
	"sculink/internal/config"
	"sculink/internal/types"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	sectionsFile string
	yesFlag      bool
)

const backendTimeout = 30 * time.Second

func requireSource() error {
	if source == nil {
		return errors.New("no configuration backend selected, set CONFIG_BACKEND=redis or ddb")
	}
	return nil
}

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Manage device sections in the remote configuration backend",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		return requireSource()
	},
}

var sectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sections kept in the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), backendTimeout)
		defer cancel()
		sections, err := source.ListSections(ctx)
		if err != nil {
			return fmt.Errorf("failed to list sections: %w", err)
		}
		return render(cmd.OutOrStdout(), sections)
	},
}

var sectionsGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show one section",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), backendTimeout)
		defer cancel()
		sec, err := source.GetSection(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get section %q: %w", args[0], err)
		}
		return render(cmd.OutOrStdout(), sec)
	},
}

var sectionsPutCmd = &cobra.Command{
	Use:   "put [<name> key=value...]",
	Short: "Create or replace sections",
	Long: `Create or replace one section from key=value arguments, or every
section of a configuration file given with --file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var sections []types.Section
		if sectionsFile != "" {
			if len(args) > 0 {
				return errors.New("--file cannot be combined with arguments")
			}
			var err error
			sections, err = config.ReadFile(sectionsFile)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", sectionsFile, err)
			}
		} else {
			sec, err := sectionFromArgs(args)
			if err != nil {
				return err
			}
			sections = append(sections, sec)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), backendTimeout)
		defer cancel()
		for _, sec := range sections {
			if err := source.PutSection(ctx, sec); err != nil {
				return fmt.Errorf("failed to put section %q: %w", sec.Name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Section %q stored.\n", sec.Name)
		}
		return nil
	},
}

func sectionFromArgs(args []string) (types.Section, error) {
	if len(args) < 2 {
		return types.Section{}, errors.New("expected a section name and at least one key=value")
	}
	sec := types.Section{Name: args[0], Values: make(map[string]string, len(args)-1)}
	for _, kv := range args[1:] {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return types.Section{}, fmt.Errorf("invalid key=value %q", kv)
		}
		sec.Values[strings.TrimSpace(k)] = v
	}
	return sec, nil
}

var sectionsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete one section",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), backendTimeout)
		defer cancel()
		if err := source.DeleteSection(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete section %q: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Section %q deleted.\n", args[0])
		return nil
	},
}

var sectionsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every section in the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !yesFlag {
			return errors.New("refusing to delete every section without --yes")
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), backendTimeout)
		defer cancel()
		if err := source.ClearAll(ctx); err != nil {
			return fmt.Errorf("failed to clear sections: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All sections deleted.")
		return nil
	},
}

func init() {
	sectionsPutCmd.Flags().StringVarP(&sectionsFile, "file", "f", "", "ini or yaml file whose sections are stored")
	sectionsClearCmd.Flags().BoolVar(&yesFlag, "yes", false, "confirm deleting every section")
	sectionsCmd.AddCommand(sectionsListCmd)
	sectionsCmd.AddCommand(sectionsGetCmd)
	sectionsCmd.AddCommand(sectionsPutCmd)
	sectionsCmd.AddCommand(sectionsDeleteCmd)
	sectionsCmd.AddCommand(sectionsClearCmd)
	rootCmd.AddCommand(sectionsCmd)
}
