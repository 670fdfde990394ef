package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	target     string
	project    string
	collection string
	timeout    time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "signalctl",
	Short: "signalctl - exercise the testys Firestore-to-Slack notifier",
	Long: `signalctl is a command line tool for working with the testys notifier.

You can use it to send synthetic Firestore document-created events to a
locally running function and to preview the Slack payload a document
would produce.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.signalctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&target, "target", "http://localhost:8080/", "URL of the running function")
	rootCmd.PersistentFlags().StringVar(&project, "project", "demo-project", "Firestore project id used in resource names")
	rootCmd.PersistentFlags().StringVar(&collection, "collection", "messages", "source collection name")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")

	// Bind flags to viper
	viper.BindPFlag("target", rootCmd.PersistentFlags().Lookup("target"))
	viper.BindPFlag("project", rootCmd.PersistentFlags().Lookup("project"))
	viper.BindPFlag("collection", rootCmd.PersistentFlags().Lookup("collection"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".signalctl")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// Override global variables with config values if flags weren't explicitly set
	if !rootCmd.PersistentFlags().Changed("target") {
		if s := viper.GetString("target"); s != "" {
			target = s
		}
	}
	if !rootCmd.PersistentFlags().Changed("project") {
		if s := viper.GetString("project"); s != "" {
			project = s
		}
	}
	if !rootCmd.PersistentFlags().Changed("collection") {
		if s := viper.GetString("collection"); s != "" {
			collection = s
		}
	}
	if !rootCmd.PersistentFlags().Changed("timeout") {
		if d := viper.GetDuration("timeout"); d > 0 {
			timeout = d
		}
	}
}

// documentName builds a full Firestore resource name for a document id.
func documentName(docID string) string {
	return fmt.Sprintf("projects/%s/databases/(default)/documents/%s/%s", project, collection, docID)
}
