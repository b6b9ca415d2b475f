package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "docchat-be",
	Short: "Backend for chatting with an uploaded PDF document",
	Long: `docchat-be is a web backend that ingests a PDF document into a
Weaviate vector index and answers natural-language questions about it
using a hosted LLM. Run "docchat-be start" to serve the HTTP API.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}
