package embedding

// Task types understood by the Gemini embedding API. Ollama ignores them.
const (
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
)

// Dimensions is the fixed output width of the supported embedding models
// (text-embedding-004 and nomic-embed-text both emit 768 floats). Vector
// collections are created with this dimensionality.
const Dimensions = 768

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	Generate(text string, taskType string) ([]float32, error)
}
