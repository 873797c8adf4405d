// Package cmd implements the diagnostic command-line interface for the playkit SDK.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/playkit-ui/playkit/constant"
	"github.com/playkit-ui/playkit/key"
	"github.com/playkit-ui/playkit/log"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the SDK version")

	rootCmd.PersistentFlags().StringP("label-language", "L", "", "Set the language used to resolve track labels (english, native)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("label-language", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"english", "native"}, cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.TracksLabelLanguage, rootCmd.PersistentFlags().Lookup("label-language")))

	rootCmd.PersistentFlags().BoolP("show-bitrate", "B", false, "Append rendition bitrates to video quality labels")
	lo.Must0(viper.BindPFlag(key.TracksShowBitrate, rootCmd.PersistentFlags().Lookup("show-bitrate")))
}

// rootCmd defines the entry point for the playkit diagnostic CLI.
var rootCmd = &cobra.Command{
	Use:   constant.Playkit,
	Short: "Diagnostic and configuration tooling for the playkit player SDK",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
