package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/blackcoderx/oasify/pkg/converter"
	"github.com/blackcoderx/oasify/pkg/core"
	"github.com/blackcoderx/oasify/pkg/insomnia"
	"github.com/blackcoderx/oasify/pkg/openapi"
	"github.com/blackcoderx/oasify/pkg/storage"
	"github.com/spf13/cobra"
)

// convertOptions are the inputs of one convert run.
type convertOptions struct {
	Input   string
	Output  string // empty writes to stdout
	Format  string
	Diff    bool // show the change against Output and stop
	Yes     bool // overwrite without asking
	WorkDir string
}

var convertFlags convertOptions

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertFlags.Output, "output", "o", "", "write the document to this file instead of stdout")
	convertCmd.Flags().StringVar(&convertFlags.Format, "format", "yaml", "output format (yaml or json)")
	convertCmd.Flags().BoolVar(&convertFlags.Diff, "diff", false, "show the diff against the existing output file without writing")
	convertCmd.Flags().BoolVarP(&convertFlags.Yes, "yes", "y", false, "overwrite an existing output file without asking")
}

var convertCmd = &cobra.Command{
	Use:   "convert <insomnia-export.json>",
	Short: "Convert an Insomnia export into an OpenAPI document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		opts := convertFlags
		opts.Input = args[0]
		opts.WorkDir = wd
		return runConvert(cfg, opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// convertFile loads and converts one export with the configured options.
func convertFile(cfg core.Config, path string) (*openapi.Document, error) {
	src, err := insomnia.LoadFile(path, cfg.Server.MaxUploadBytes)
	if err != nil {
		return nil, err
	}
	return converter.Convert(src, cfg.ConverterOptions()...)
}

func runConvert(cfg core.Config, opts convertOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	format, err := storage.ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	if opts.Diff && opts.Output == "" {
		return fmt.Errorf("--diff needs --output to compare against")
	}

	doc, err := convertFile(cfg, opts.Input)
	if err != nil {
		return err
	}
	data, err := storage.Marshal(doc, format)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		printSummary(stderr, doc)
		return nil
	}

	path, err := storage.ResolveOutputPath(opts.Output, opts.WorkDir)
	if err != nil {
		return err
	}
	if filepath.Ext(path) == "" {
		path += format.Extension()
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		diff := storage.Diff(opts.Output, string(existing), string(data))
		if diff == "" {
			fmt.Fprintln(stderr, dimStyle.Render(path+" is already up to date"))
			return nil
		}
		fmt.Fprint(stderr, diff)
		if opts.Diff {
			return nil
		}
		if !opts.Yes && !confirm(stdin, stderr, "Overwrite "+path+"?") {
			fmt.Fprintln(stderr, "Aborted, nothing written.")
			return nil
		}
	case os.IsNotExist(err):
		if opts.Diff {
			fmt.Fprintln(stderr, dimStyle.Render(path+" does not exist yet; the whole document is new"))
			return nil
		}
	default:
		return fmt.Errorf("failed to read existing output: %w", err)
	}

	written, err := storage.WriteOutput(data, path, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(stderr, okStyle.Render("Wrote "+written))
	printSummary(stderr, doc)
	return nil
}

func printSummary(w io.Writer, doc *openapi.Document) {
	unresolved := converter.UnresolvedPlaceholders(doc)
	renderMarkdown(w, summaryMarkdown(converter.Summarize(doc), unresolved))
	if len(unresolved) > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Warning: %d unresolved template variable(s) left in paths", len(unresolved))))
	}
}
