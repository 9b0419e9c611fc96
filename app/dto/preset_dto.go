package dto

// ValidatePresetURLRequest asks whether a URL is acceptable for a preset
type ValidatePresetURLRequest struct {
	URL    string `json:"url"`
	Preset string `json:"preset"`
}

// ValidatePresetURLResponse is the validator's decision
type ValidatePresetURLResponse struct {
	Valid bool `json:"valid"`
}

// PresetDTO describes one preset kind and its acceptance rule
type PresetDTO struct {
	Preset   string   `json:"preset"`
	Prefixes []string `json:"prefixes,omitempty"`
	Pattern  string   `json:"pattern,omitempty"`
}

// ListPresetsResponse is the preset catalogue
type ListPresetsResponse struct {
	Presets []PresetDTO `json:"presets"`
}
