package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cernym46/testys-firebase/internal/config"
	"github.com/cernym46/testys-firebase/internal/document"
	"github.com/cernym46/testys-firebase/internal/notifier"
)

var (
	renderDocID string
	renderData  string
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the Slack payload a document would produce",
	Long: `Render the Block Kit message for a JSON document literal without
sending anything, using the same configuration the notifier reads.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document.FromJSON(documentName(renderDocID), []byte(renderData))
		if err != nil {
			return err
		}

		cfg := config.FromEnv()
		cfg.Notifier.Collection = collection

		msg, truncated := notifier.New(cfg, nil).Render(renderDocID, document.Record(doc))

		out, err := json.MarshalIndent(msg, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal message: %w", err)
		}
		fmt.Println(string(out))

		if truncated {
			fmt.Fprintln(cmd.ErrOrStderr(), "note: raw-data block was truncated")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderDocID, "doc-id", "preview", "document id shown in the field section")
	renderCmd.Flags().StringVar(&renderData, "data", `{"message": "hello from signalctl"}`, "document fields as a JSON object literal")
}
