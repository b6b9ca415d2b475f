package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/tranhn/docchat-be/config"
	"github.com/tranhn/docchat-be/database"
	"github.com/tranhn/docchat-be/service"
	"github.com/tranhn/docchat-be/types"
)

// ingestCmd runs the ingestion pipeline on a local PDF without going
// through the HTTP server, then prints the document summary.
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a local PDF into the vector index",
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		reinit, _ := cmd.Flags().GetBool("reinit")
		if filePath == "" {
			log.Fatal("--file is required")
		}

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		weaviateDb, err := database.NewWeaviateStore(cfg.WeaviateStoreConfig())
		if err != nil {
			log.Fatalf("Failed to create Weaviate client: %v", err)
		}
		if reinit {
			if err := weaviateDb.Reset(context.Background()); err != nil {
				log.Fatalf("Failed to reinitialize vector index: %v", err)
			}
		}

		pdfService := service.NewPDFService(types.ChunkerConfig{
			ChunkSize: cfg.ChunkSize,
			Overlap:   cfg.ChunkOverlap,
		})
		embedder := service.NewOpenAIEmbeddingService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.EmbeddingModel)
		aiService, err := newAIService(cfg)
		if err != nil {
			log.Fatalf("Failed to create AI service: %v", err)
		}

		session := service.NewChatbotService(pdfService, pdfService, embedder, weaviateDb, aiService, cfg.RetrievalLimit)
		session.Initialize(context.Background(), filePath)
		if session.State() != service.StateReady {
			log.Fatalf("Document was not processed correctly: %s", session.Summary())
		}

		fmt.Println(session.Summary())
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringP("file", "f", "", "Path to the PDF file to ingest")
	ingestCmd.Flags().BoolP("reinit", "r", false, "Recreate the vector index class before ingesting")
}
