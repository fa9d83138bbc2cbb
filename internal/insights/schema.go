package insights

import "github.com/soumikb/aquasense/internal/llm"

// ReportSchema defines the JSON schema for advisory generation.
var ReportSchema = &llm.Schema{
	Name:        "water-insight-report",
	Description: "Advisory report for an assessed water sample",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"classification": map[string]any{
				"type":        "string",
				"description": "Plain-language statement of the water quality classification (1-2 sentences)",
			},
			"key_issues": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Problematic parameters with magnitude and likely cause",
			},
			"treatments": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Recommended treatment methods, most relevant first",
			},
			"post_treatment_uses": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Suitable uses after the recommended treatment",
			},
			"health_considerations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Risks of using the water without treatment",
			},
			"conclusion": map[string]any{
				"type":        "string",
				"description": "Short overall recommendation (1-3 sentences)",
			},
		},
		"required": []any{
			"classification", "key_issues", "treatments",
			"post_treatment_uses", "health_considerations", "conclusion",
		},
		"additionalProperties": false,
	},
}
