package calc

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// AllowedMultiFormats are the separators understood by ParseMultiValues and
// OutputMultiValues. "json" cannot be combined with the others.
var AllowedMultiFormats = []string{"comma", "newline", "space", "json"}

func checkMultiFormat(formats []string, flag string) error {
	for _, format := range formats {
		if !slices.Contains(AllowedMultiFormats, format) {
			return fmt.Errorf("invalid format: %s for flag %s, allowed formats are: %v", format, flag, AllowedMultiFormats)
		}
	}
	if slices.Contains(formats, "json") && len(formats) > 1 {
		return fmt.Errorf("format 'json' for flag %s cannot be combined with other formats", flag)
	}
	return nil
}

func splitAndTrim(s string, seps string) []string {
	isSep := func(r rune) bool { return strings.ContainsRune(seps, r) }
	parts := strings.FieldsFunc(s, isSep)
	out := parts[:0]
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseMultiValues splits raw arguments into values according to formats.
// With no format every raw argument is one value. With "json" each raw
// argument is either a JSON array of strings or numbers, or a single JSON
// scalar.
func ParseMultiValues(formats []string, rawValues []string, flag string) ([]string, error) {
	if err := checkMultiFormat(formats, flag); err != nil {
		return nil, err
	}
	if len(formats) == 0 {
		return rawValues, nil
	}
	if slices.Contains(formats, "json") {
		var result []string
		for _, raw := range rawValues {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			var arr []json.Number
			if err := json.Unmarshal([]byte(raw), &arr); err == nil {
				for _, n := range arr {
					result = append(result, n.String())
				}
				continue
			}
			var strs []string
			if err := json.Unmarshal([]byte(raw), &strs); err == nil {
				result = append(result, strs...)
				continue
			}
			var n json.Number
			if err := json.Unmarshal([]byte(raw), &n); err == nil {
				result = append(result, n.String())
				continue
			}
			var s string
			if err := json.Unmarshal([]byte(raw), &s); err != nil {
				return nil, fmt.Errorf("invalid json value: %s for flag %s, %v", raw, flag, err)
			}
			result = append(result, s)
		}
		return result, nil
	}

	sepsBuilder := strings.Builder{}
	for _, format := range formats {
		switch format {
		case "comma":
			sepsBuilder.WriteString(",")
		case "newline":
			sepsBuilder.WriteString("\r\n")
		case "space":
			sepsBuilder.WriteString(" \t")
		}
	}
	seps := sepsBuilder.String()
	var result []string
	for _, raw := range rawValues {
		result = append(result, splitAndTrim(raw, seps)...)
	}
	return result, nil
}

// OutputMultiValues joins values for printing. JSON output is an array of
// strings so that every payload type renders the same way.
func OutputMultiValues(formats []string, values []string) (string, error) {
	if err := checkMultiFormat(formats, "format"); err != nil {
		return "", err
	}
	isJson := slices.Contains(formats, "json")
	if len(values) == 0 {
		if isJson {
			return "[]", nil
		}
		return "", nil
	}
	if len(formats) == 0 {
		return strings.Join(values, ","), nil
	}
	if isJson {
		data, err := json.Marshal(values)
		if err != nil {
			return "", fmt.Errorf("failed to marshal values to json: %w", err)
		}
		return string(data), nil
	}
	var sep string
	if slices.Contains(formats, "comma") {
		sep = ","
	} else if slices.Contains(formats, "newline") {
		sep = "\n"
	} else {
		sep = " "
	}
	return strings.Join(values, sep), nil
}
