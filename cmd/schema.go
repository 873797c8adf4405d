// Package cmd implements the diagnostic command-line interface for the playkit SDK.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/playkit-ui/playkit/engine"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
	schemaCmd.Flags().BoolP("compact", "c", false, "Emit the schema without indentation")
}

// schemaCmd exports the JSON schema of the media configuration accepted by Load.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Export the JSON schema of the media configuration",
	Long:  "Export the JSON schema describing the media configuration object accepted by the player facade, for validation in embedding applications.",
	Run: func(cmd *cobra.Command, args []string) {
		schema := jsonschema.Reflect(&engine.MediaConfig{})

		encoder := json.NewEncoder(cmd.OutOrStdout())
		if !lo.Must(cmd.Flags().GetBool("compact")) {
			encoder.SetIndent("", "  ")
		}
		lo.Must0(encoder.Encode(schema))
	},
}
