package maps

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// StyleRule is one entry of a vendor map style. The vendor SDK consumes
// styles as a JSON array of rules; this type also accepts the YAML form so
// style files can live alongside the app's other YAML assets.
type StyleRule struct {
	FeatureType string           `yaml:"featureType" json:"featureType,omitempty"`
	ElementType string           `yaml:"elementType" json:"elementType,omitempty"`
	Stylers     []map[string]any `yaml:"stylers" json:"stylers,omitempty"`
}

// ParseStyle decodes style rules from YAML or JSON bytes.
func ParseStyle(data []byte) ([]StyleRule, error) {
	var rules []StyleRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("maps: parse style: %w", err)
	}
	return rules, nil
}

// styleJSON renders the rules as the JSON string the vendor SDK expects.
func styleJSON(rules []StyleRule) (string, error) {
	data, err := json.Marshal(rules)
	if err != nil {
		return "", fmt.Errorf("maps: encode style: %w", err)
	}
	return string(data), nil
}
