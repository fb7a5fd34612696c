package cmd

import (
	"fmt"
	"io"
	"os"

	"speakertag/infrastructure/config"

	"github.com/spf13/cobra"
)

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	io.Writer
}

// DefaultOutput is the default output writer for config commands
var DefaultOutput OutputWriter = os.Stdout

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration entries",
	Long: `Manage the name-detection stopword list in the configuration file.

Stopwords are words the name detector must never treat as a first name.
A built-in set covers common greetings; add your own here when the
detector keeps picking up a channel catchphrase as a name.

Examples:
  speakertag config list stopwords
  speakertag config add stopword Legends
  speakertag config remove stopword Legends`,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configAddCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configRemoveCmd)
}

// --- ADD command ---

var configAddCmd = &cobra.Command{
	Use:   "add stopword <word>",
	Short: "Add a new stopword",
	Long: `Add a word to the extra stopword list.

Examples:
  speakertag config add stopword Legends`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigAdd,
}

func runConfigAdd(cmd *cobra.Command, args []string) error {
	return RunConfigAddWithDependencies(GetConfig(), cfgFile, args[0], args[1], DefaultOutput)
}

// RunConfigAddWithDependencies runs the add command with injected dependencies
func RunConfigAddWithDependencies(cfg *config.Config, configPath, entityType, word string, out OutputWriter) error {
	if entityType != "stopword" {
		return fmt.Errorf("unknown entity type %q. Use stopword", entityType)
	}

	mgr := config.NewConfigManager(cfg, configPath)
	if err := mgr.AddStopword(word); err != nil {
		return err
	}
	fmt.Fprintf(out, "Added stopword %q\n", word)
	return nil
}

// --- LIST command ---

var configListCmd = &cobra.Command{
	Use:   "list stopwords",
	Short: "List extra stopwords",
	Long: `List the configured extra stopwords. The built-in set is always active
and is not shown here.

Examples:
  speakertag config list stopwords`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigList,
}

func runConfigList(cmd *cobra.Command, args []string) error {
	return RunConfigListWithDependencies(GetConfig(), cfgFile, args[0], DefaultOutput)
}

// RunConfigListWithDependencies runs the list command with injected dependencies
func RunConfigListWithDependencies(cfg *config.Config, configPath, entityType string, out OutputWriter) error {
	if entityType != "stopwords" {
		return fmt.Errorf("unknown entity type %q. Use stopwords", entityType)
	}

	mgr := config.NewConfigManager(cfg, configPath)
	words := mgr.ListStopwords()
	if len(words) == 0 {
		fmt.Fprintln(out, "No extra stopwords configured.")
		return nil
	}
	for _, w := range words {
		fmt.Fprintln(out, w)
	}
	return nil
}

// --- REMOVE command ---

var configRemoveCmd = &cobra.Command{
	Use:   "remove stopword <word>",
	Short: "Remove a stopword",
	Long: `Remove a word from the extra stopword list.

Examples:
  speakertag config remove stopword Legends`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigRemove,
}

func runConfigRemove(cmd *cobra.Command, args []string) error {
	return RunConfigRemoveWithDependencies(GetConfig(), cfgFile, args[0], args[1], DefaultOutput)
}

// RunConfigRemoveWithDependencies runs the remove command with injected dependencies
func RunConfigRemoveWithDependencies(cfg *config.Config, configPath, entityType, word string, out OutputWriter) error {
	if entityType != "stopword" {
		return fmt.Errorf("unknown entity type %q. Use stopword", entityType)
	}

	mgr := config.NewConfigManager(cfg, configPath)
	if err := mgr.RemoveStopword(word); err != nil {
		return err
	}
	fmt.Fprintf(out, "Removed stopword %q\n", word)
	return nil
}
