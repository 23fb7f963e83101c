package main

import (
	"fmt"
	"os"

	"github.com/blackcoderx/oasify/pkg/storage"
	"github.com/blackcoderx/oasify/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	browseOutput string
	browseFormat string
)

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringVarP(&browseOutput, "output", "o", tui.DefaultSavePath, "file written by ctrl+s")
	browseCmd.Flags().StringVar(&browseFormat, "format", "yaml", "format written by ctrl+s (yaml or json)")
}

var browseCmd = &cobra.Command{
	Use:   "browse <insomnia-export.json>",
	Short: "Convert an export and browse the operations in your terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		format, err := storage.ParseFormat(browseFormat)
		if err != nil {
			return err
		}
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		savePath, err := storage.ResolveOutputPath(browseOutput, wd)
		if err != nil {
			return err
		}

		doc, err := convertFile(cfg, args[0])
		if err != nil {
			return err
		}

		if err := tui.Run(doc, tui.Options{SavePath: savePath, Format: format}); err != nil {
			return fmt.Errorf("failed to run browser: %w", err)
		}
		return nil
	},
}
