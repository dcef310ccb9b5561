package maps

import (
	"strings"
	"testing"
)

const yamlStyle = `
- featureType: poi
  elementType: labels
  stylers:
    - visibility: "off"
- featureType: water
  stylers:
    - color: "#a2daf2"
`

func TestParseStyle_YAML(t *testing.T) {
	rules, err := ParseStyle([]byte(yamlStyle))
	if err != nil {
		t.Fatalf("ParseStyle: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].FeatureType != "poi" || rules[0].ElementType != "labels" {
		t.Errorf("rule 0: got %+v", rules[0])
	}
	if len(rules[1].Stylers) != 1 || rules[1].Stylers[0]["color"] != "#a2daf2" {
		t.Errorf("rule 1 stylers: got %+v", rules[1].Stylers)
	}
}

func TestParseStyle_JSON(t *testing.T) {
	// JSON is valid YAML; vendor-exported style files work unchanged.
	rules, err := ParseStyle([]byte(`[{"featureType":"road","stylers":[{"visibility":"simplified"}]}]`))
	if err != nil {
		t.Fatalf("ParseStyle: %v", err)
	}
	if len(rules) != 1 || rules[0].FeatureType != "road" {
		t.Errorf("rules: got %+v", rules)
	}
}

func TestStyleJSON(t *testing.T) {
	rules, err := ParseStyle([]byte(yamlStyle))
	if err != nil {
		t.Fatalf("ParseStyle: %v", err)
	}
	out, err := styleJSON(rules)
	if err != nil {
		t.Fatalf("styleJSON: %v", err)
	}
	if !strings.Contains(out, `"featureType":"poi"`) {
		t.Errorf("missing featureType in %s", out)
	}
	if !strings.Contains(out, `"visibility":"off"`) {
		t.Errorf("missing styler in %s", out)
	}
}

func TestParseStyle_Malformed(t *testing.T) {
	if _, err := ParseStyle([]byte("featureType: [unclosed")); err == nil {
		t.Error("expected error for malformed style")
	}
}
