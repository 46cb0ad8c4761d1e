// Package llm holds the LLM provider configuration and client abstraction
// used by the deep analysis layer. The rule-based engine never touches this
// package; it exists only for optional enrichment.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for cheap structured extraction tasks
	TierLite ModelTier = "lite"
	// TierAdvanced is for full fit-analysis reasoning
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back to lite when the
// tier has no mapping.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierLite]
}
