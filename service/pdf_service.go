package service

import (
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/tranhn/docchat-be/types"
)

var DefaultChunkerConfig = types.ChunkerConfig{
	ChunkSize: 512,
	Overlap:   20,
}

// PDFService extracts text from PDF files and splits it into
// token-bounded chunks for indexing.
type PDFService struct {
	chunkSize int
	overlap   int
}

func NewPDFService(cfg types.ChunkerConfig) *PDFService {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkerConfig.ChunkSize
	}
	if cfg.Overlap < 0 || cfg.Overlap >= cfg.ChunkSize {
		cfg.Overlap = DefaultChunkerConfig.Overlap
	}
	return &PDFService{
		chunkSize: cfg.ChunkSize,
		overlap:   cfg.Overlap,
	}
}

// ExtractText reads every page of the PDF at filePath in order and returns
// the concatenated plain text. Any failure is logged and yields an empty
// string; the caller decides what an empty document means.
func (s *PDFService) ExtractText(filePath string) (text string) {
	// The pdf package panics on some malformed files; extraction must
	// degrade to an empty string instead.
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("Error extracting text from PDF %s: %v", filePath, rec)
			text = ""
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		log.Printf("Error extracting text from PDF %s: %v", filePath, err)
		return ""
	}
	defer f.Close()

	var sb strings.Builder
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("Warning: failed to extract text from page %d of %s: %v", pageNum, filePath, err)
			continue
		}
		sb.WriteString(text)
	}

	return sb.String()
}

// ChunkText splits text on token boundaries into chunks of at most
// chunkSize tokens, consecutive chunks sharing overlap tokens. Tokens are
// whitespace-delimited words. Empty input produces no chunks.
func (s *PDFService) ChunkText(text string) []types.Chunk {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	step := s.chunkSize - s.overlap
	if step <= 0 {
		step = s.chunkSize
	}

	var chunks []types.Chunk
	idx := 0
	for i := 0; i < len(words); i += step {
		end := i + s.chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, types.Chunk{
			Content: strings.Join(words[i:end], " "),
			Index:   idx,
		})
		if end == len(words) {
			break
		}
		idx++
	}

	return chunks
}
