package tailoring

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseResult carries the best-effort resume plus the names of fields that
// had to fall back to defaults, so callers can tell "fully valid" from
// "degraded but usable".
type ParseResult struct {
	Resume          TailoredResume
	DefaultedFields []string
}

// Valid reports whether no field was defaulted.
func (r ParseResult) Valid() bool {
	return len(r.DefaultedFields) == 0
}

// Parse validates raw backend output against the tailoring schema.
// Responses that are not JSON at all fail with ErrMalformedResponse; a
// missing or mistyped field is replaced by its empty default and recorded,
// never failing the whole request.
func Parse(raw string) (ParseResult, error) {
	cleaned := stripCodeFences(raw)

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &top); err != nil {
		return ParseResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	result := ParseResult{Resume: emptyResume()}

	parseField(top, "executive_summary", &result.Resume.ExecutiveSummary, &result)
	parseField(top, "personal_info", &result.Resume.PersonalInfo, &result)
	parseField(top, "skills", &result.Resume.Skills, &result)
	parseField(top, "experience", &result.Resume.Experience, &result)
	parseField(top, "projects", &result.Resume.Projects, &result)
	parseField(top, "education", &result.Resume.Education, &result)

	return result, nil
}

// parseField decodes one top-level key into dst, recording the field as
// defaulted when it is absent, null, or of the wrong shape. dst keeps its
// (already defaulted) value in that case.
func parseField[T any](top map[string]json.RawMessage, key string, dst *T, result *ParseResult) {
	raw, ok := top[key]
	if !ok || string(raw) == "null" {
		result.DefaultedFields = append(result.DefaultedFields, key)
		return
	}
	var parsed T
	if err := json.Unmarshal(raw, &parsed); err != nil {
		result.DefaultedFields = append(result.DefaultedFields, key)
		return
	}
	*dst = parsed
}

// stripCodeFences removes a surrounding markdown code block if the model
// ignored the output rules and wrapped its JSON anyway.
func stripCodeFences(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
