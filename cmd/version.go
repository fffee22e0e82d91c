package cmd

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// releaseRepository is the GitHub repository update downloads releases from
const releaseRepository = "s0up4200/tenor"

var checkOnly bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	Args:              cobra.NoArgs,
	PersistentPreRunE: skipInitialization,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "tenor %s\n", displayVersion(appVersion))
		fmt.Fprintf(cmd.OutOrStdout(), "Build time: %s\n", appBuildTime)
		fmt.Fprintf(cmd.OutOrStdout(), "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:               "update",
	Short:             "Update tenor to the latest release",
	Args:              cobra.NoArgs,
	PersistentPreRunE: skipInitialization,
	RunE:              runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check whether an update is available")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// skipInitialization replaces initializeApp for commands that need no API key
func skipInitialization(cmd *cobra.Command, args []string) error {
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := parseVersion(appVersion)
	if err != nil {
		return fmt.Errorf("cannot update a development build: %w", err)
	}

	ctx := cmd.Context()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(releaseRepository))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	out := cmd.OutOrStdout()
	if latest.LessOrEqual(current.String()) {
		fmt.Fprintf(out, "Already up to date (%s)\n", displayVersion(appVersion))
		return nil
	}

	if checkOnly {
		fmt.Fprintf(out, "Update available: %s -> %s\n", displayVersion(appVersion), latest.Version())
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(out, "Updated to %s\n", latest.Version())
	return nil
}

// parseVersion parses a build version such as "v1.2.3" or "1.2.3-rc.1"
func parseVersion(version string) (semver.Version, error) {
	if version == "" || version == "dev" {
		return semver.Version{}, errors.New("version is not set")
	}
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("invalid version %q: %w", version, err)
	}
	return v, nil
}

// displayVersion normalizes a build version for printing
func displayVersion(version string) string {
	v, err := parseVersion(version)
	if err != nil {
		return version
	}
	return "v" + v.String()
}
