package main

import (
	"fmt"
	"os"

	"github.com/blackcoderx/oasify/pkg/core"
	"github.com/spf13/cobra"
)

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config with the defaults")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .oasify/config.json with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		created, err := core.InitializeFolder(wd, initForce)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !created {
			fmt.Fprintln(out, dimStyle.Render(core.ConfigPath(".")+" already exists (use --force to reset it)"))
			return nil
		}
		fmt.Fprintln(out, okStyle.Render("Created "+core.ConfigPath(".")))
		return nil
	},
}
