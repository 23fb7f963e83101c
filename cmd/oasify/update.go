package main

import (
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"
)

// releaseRepo is the GitHub repository releases are published to.
const releaseRepo = "blackcoderx/oasify"

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update oasify to the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if version == "dev" {
			fmt.Fprintln(out, "You are running a development build of oasify. Update is not supported.")
			return nil
		}

		v, err := semver.ParseTolerant(version)
		if err != nil {
			return fmt.Errorf("failed to parse current version %q: %w", version, err)
		}

		latest, found, err := selfupdate.DetectLatest(releaseRepo)
		if err != nil {
			return fmt.Errorf("failed to detect latest version: %w", err)
		}
		if !found || latest.Version.LTE(v) {
			fmt.Fprintln(out, "Current version is the latest")
			return nil
		}

		if !confirm(cmd.InOrStdin(), out, fmt.Sprintf("Do you want to update to %s?", latest.Version)) {
			return nil
		}

		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("could not locate executable path: %w", err)
		}
		if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
			return fmt.Errorf("failed to update binary: %w", err)
		}
		fmt.Fprintln(out, okStyle.Render("Successfully updated to version "+latest.Version.String()))
		return nil
	},
}
