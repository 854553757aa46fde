package dto

// ProviderResponse describes one registered transcriber.
type ProviderResponse struct {
	Name             string `json:"name" example:"whisper_cpp"`
	DisplayName      string `json:"display_name,omitempty" example:"whisper.cpp (local)"`
	RequiresInternet bool   `json:"requires_internet"`
	Default          bool   `json:"default"`
	Healthy          bool   `json:"healthy"`
	Error            string `json:"error,omitempty"`
}

// ListProvidersResponse wraps the provider listing.
type ListProvidersResponse struct {
	Providers []ProviderResponse `json:"providers"`
	Default   string             `json:"default"`
}
