// Package cmd implements the diagnostic command-line interface for the playkit SDK.
package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/playkit-ui/playkit/constant"
	"github.com/playkit-ui/playkit/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
	versionCmd.Flags().String("at-least", "", "Exit non-zero when the SDK version is older than the given one")
}

// versionCmd displays SDK version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display exhaustive version and build metadata",
	Long:  "Display the current SDK version, build revision, platform architecture, and related metadata.",
	Run: func(cmd *cobra.Command, args []string) {
		if atLeast := lo.Must(cmd.Flags().GetString("at-least")); atLeast != "" {
			order, err := version.Compare(constant.Version, atLeast)
			handleErr(err)

			if order < 0 {
				handleErr(fmt.Errorf("version %s is older than required %s", constant.Version, atLeast))
			}
		}

		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		versionInfo := struct {
			Version  string
			OS       string
			Arch     string
			BuiltAt  string
			Revision string
			App      string
		}{
			Version:  constant.Version,
			App:      constant.Playkit,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			Revision: constant.Revision,
		}

		t, err := template.New("version").Parse(`{{ .App }}

  Version      {{ .Version }}
  Git Commit   {{ .Revision }}
  Build Date   {{ .BuiltAt }}
  Platform     {{ .OS }}/{{ .Arch }}
`)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), versionInfo))
	},
}
