package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseInputs builds a calculator payload from a JSON object (may be empty)
// and repeated "Label=value" assignments. Assignments override JSON keys.
//
// Values are decoded as:
//   - "70 kg"      -> [70, "kg"]
//   - "45"         -> 45
//   - "true"/"no"  -> kept as text (calculators coerce flags)
//   - anything else -> the text itself
func ParseInputs(rawJSON string, assignments []string) (map[string]any, error) {
	payload := map[string]any{}
	if strings.TrimSpace(rawJSON) != "" {
		if err := json.Unmarshal([]byte(rawJSON), &payload); err != nil {
			return nil, fmt.Errorf("inputs must be a JSON object: %w", err)
		}
	}

	for _, a := range assignments {
		label, value, ok := strings.Cut(a, "=")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			return nil, fmt.Errorf("invalid input %q, want Label=value", a)
		}
		payload[label] = parseValue(strings.TrimSpace(value))
	}
	return payload, nil
}

func parseValue(s string) any {
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	if num, unit, ok := strings.Cut(s, " "); ok {
		if n, err := strconv.ParseFloat(num, 64); err == nil {
			return []any{n, strings.TrimSpace(unit)}
		}
	}
	return s
}
