package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/tranhn/docchat-be/config"
	"github.com/tranhn/docchat-be/database"
)

// reinitCmd drops and recreates the Chatbot class in Weaviate. Uploads do
// not clean up entries from earlier documents, so this is how an operator
// clears them.
var reinitCmd = &cobra.Command{
	Use:   "reinit",
	Short: "Drop and recreate the vector index class",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		weaviateDb, err := database.NewWeaviateStore(cfg.WeaviateStoreConfig())
		if err != nil {
			log.Fatalf("Failed to create Weaviate client: %v", err)
		}

		if err := weaviateDb.Reset(context.Background()); err != nil {
			log.Fatalf("Failed to reinitialize vector index: %v", err)
		}
		log.Println("Vector index class recreated")
	},
}

func init() {
	rootCmd.AddCommand(reinitCmd)
}
