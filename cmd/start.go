package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"github.com/tranhn/docchat-be/config"
	"github.com/tranhn/docchat-be/database"
	"github.com/tranhn/docchat-be/handler"
	"github.com/tranhn/docchat-be/service"
	"github.com/tranhn/docchat-be/types"
)

// startCmd serves the document upload/chat/status API.
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document chat server",
	Long:  `Starts the HTTP server that accepts PDF uploads and answers questions about the uploaded document.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		weaviateDb, err := database.NewWeaviateStore(cfg.WeaviateStoreConfig())
		if err != nil {
			log.Fatalf("Failed to create Weaviate client: %v", err)
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

		fileService, err := service.NewFileService(cfg.UploadDir)
		if err != nil {
			log.Fatalf("Failed to create upload directory: %v", err)
		}

		sessions := service.NewSessionManager(func() *service.ChatbotService {
			return service.NewChatbotService(pdfService, pdfService, embedder, weaviateDb, aiService, cfg.RetrievalLimit)
		})

		corsHandler := handler.NewCorsHandler()
		uploadHandler := handler.NewUploadHandler(fileService, sessions)
		chatHandler := handler.NewChatHandler(sessions)
		statusHandler := handler.NewStatusHandler(sessions)

		router := mux.NewRouter()
		router.Use(corsHandler.Middleware)

		api := router.PathPrefix("/api").Subrouter()
		api.HandleFunc("/upload", uploadHandler.HandleUpload()).Methods(http.MethodPost, http.MethodOptions)
		api.HandleFunc("/chat", chatHandler.HandleChat()).Methods(http.MethodPost, http.MethodOptions)
		api.HandleFunc("/status", statusHandler.HandleStatus()).Methods(http.MethodGet, http.MethodOptions)

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func newAIService(cfg *config.Config) (service.AIService, error) {
	switch cfg.AIProvider {
	case "openai":
		return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model), nil
	case "gemini":
		return service.NewGeminiService(cfg.GeminiAPIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", cfg.AIProvider)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
}
