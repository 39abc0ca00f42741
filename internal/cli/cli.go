// Package cli implements the command-line interface of tably.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tably/tably/internal/config"
	"github.com/tably/tably/internal/store"
	"github.com/tably/tably/internal/util"
)

// parseOutputFormat takes "table" or "json" and returns an
// outputFormat enum value.
func parseOutputFormat(formatStr string) outputFormat {
	switch formatStr {
	case "table":
		return outputFormatTable
	case "json":
		return outputFormatJSON
	default:
		util.Die(`Error: invalid format %#v (must be "table" or "json")`, formatStr)
		return 0
	}
}

// version is set at build time to a Git tag or the string
// "development version" when not tagging a release.
var version = "unknown version"

// getVersion returns a string that can be printed when calling 'tably
// --version'.
func getVersion() string {
	return "tably " + version
}

// DoCLI reads the command-line arguments and runs the appropriate
// code, then exits the process (or returns to indicate normal exit).
func DoCLI() {
	defaults := store.Read()

	styleDefault := defaults.Style
	if styleDefault == "" {
		styleDefault = "light"
	}
	paddingDefault := 1
	if defaults.Padding != nil {
		paddingDefault = *defaults.Padding
	}
	centeredDefault := defaults.Centered != nil && *defaults.Centered

	var opts renderOptions
	var formatStr string
	var inputFormatStr string
	var headerRow bool
	var labels []string
	var selectors []string
	var saveStyle string

	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:     "tably",
		Short:   "Render tabular data as box-drawn text",
		Version: getVersion(),
	}
	rootCmd.SetVersionTemplate(`{{.Version}}` + "\n")
	rootCmd.PersistentFlags().BoolVarP(
		&config.Quiet, "quiet", "q", false, "don't show progress messages",
	)
	rootCmd.PersistentFlags().BoolP(
		"help", "h", false, "display command-line usage",
	)
	rootCmd.PersistentFlags().BoolP(
		"version", "v", false, "display command version",
	)

	addRenderFlags := func(cmd *cobra.Command) {
		cmd.Flags().SortFlags = false
		cmd.Flags().StringVarP(
			&opts.style, "style", "s", styleDefault,
			"box-drawing style (see 'tably styles')",
		)
		cmd.Flags().BoolVarP(
			&opts.centered, "centered", "c", centeredDefault,
			"center cell content instead of left-justifying",
		)
		cmd.Flags().IntVarP(
			&opts.padding, "padding", "p", paddingDefault,
			"spaces on each side of cell content",
		)
		cmd.Flags().StringVarP(
			&opts.output, "output", "o", "",
			"write to a file (atomically) instead of stdout",
		)
		cmd.Flags().StringVarP(
			&formatStr, "format", "f", "table", `output format ("table" or "json")`,
		)
	}

	cmdRender := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Render a table from CSV, JSON, YAML, or TOML data",
		Long: "Render a table from FILE, or from standard input when FILE " +
			"is omitted or '-'. The format is taken from the file extension " +
			"unless --input is given; standard input defaults to CSV.",
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			outputFormat := parseOutputFormat(formatStr)
			runRender(path, inputFormatStr, headerRow, labels, selectors, opts, outputFormat)
		},
	}
	addRenderFlags(cmdRender)
	cmdRender.Flags().StringVarP(
		&inputFormatStr, "input", "i", "",
		`input format ("csv", "json", "yaml", or "toml")`,
	)
	cmdRender.Flags().BoolVar(
		&headerRow, "header", false, "treat the first row as column labels",
	)
	cmdRender.Flags().StringSliceVarP(
		&labels, "labels", "l", []string{},
		"column labels (comma-separated), overriding any from the input",
	)
	cmdRender.Flags().StringSliceVar(
		&selectors, "select", []string{},
		"columns to keep, by label or zero-based position (comma-separated)",
	)
	rootCmd.AddCommand(cmdRender)

	cmdStyles := &cobra.Command{
		Use:   "styles",
		Short: "Preview the box-drawing styles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runStyles(saveStyle)
		},
	}
	cmdStyles.Flags().StringVar(
		&saveStyle, "save", "", "persist a default style for later runs",
	)
	rootCmd.AddCommand(cmdStyles)

	cmdSQL := &cobra.Command{
		Use:   "sql DATABASE QUERY",
		Short: "Render the result of a read-only SQLite query",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			outputFormat := parseOutputFormat(formatStr)
			runSQL(args[0], args[1], opts, outputFormat)
		},
	}
	addRenderFlags(cmdSQL)
	rootCmd.AddCommand(cmdSQL)

	// Single-dash long options, for people used to GNU-style tools.
	specialArgs := map[string](func()){}
	for _, helpFlag := range []string{"-help", "-?"} {
		specialArgs[helpFlag] = func() {
			rootCmd.Usage()
			os.Exit(0)
		}
	}
	for _, versionFlag := range []string{"-version", "-V"} {
		specialArgs[versionFlag] = func() {
			fmt.Println(getVersion())
			os.Exit(0)
		}
	}

	if len(os.Args) >= 2 {
		fn, ok := specialArgs[os.Args[1]]
		if ok {
			fn()
		}
	}

	rootCmd.Execute()
}
