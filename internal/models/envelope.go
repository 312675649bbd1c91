package models

import (
	"encoding/json"
)

// AgentEnvelope is the raw wrapper returned by the agent platform. The
// nested result is kept undecoded here; NormalizePayload owns the decoding.
type AgentEnvelope struct {
	Success       bool           `json:"success"`
	Response      *AgentResponse `json:"response,omitempty"`
	ModuleOutputs *ModuleOutputs `json:"module_outputs,omitempty"`
}

// AgentResponse carries the nested, possibly string-encoded result document.
type AgentResponse struct {
	Result json.RawMessage `json:"result,omitempty"`
}

// ModuleOutputs carries side artifacts produced by the agent run.
type ModuleOutputs struct {
	ArtifactFiles []ArtifactFile `json:"artifact_files,omitempty"`
}

// ArtifactFile is a file reference emitted by the agent platform.
type ArtifactFile struct {
	FileURL    string `json:"file_url,omitempty"`
	Name       string `json:"name,omitempty"`
	FormatType string `json:"format_type,omitempty"`
}

// ArtifactImages extracts the image list from the raw envelope. Missing
// fields come back as empty strings, and a missing artifact list comes back
// as an empty slice, never nil.
func (e *AgentEnvelope) ArtifactImages() []VisualImage {
	images := []VisualImage{}
	if e == nil || e.ModuleOutputs == nil {
		return images
	}
	for _, f := range e.ModuleOutputs.ArtifactFiles {
		images = append(images, VisualImage{
			FileURL:    f.FileURL,
			Name:       f.Name,
			FormatType: f.FormatType,
		})
	}
	return images
}
