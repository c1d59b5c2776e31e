package question

import (
	"encoding/json"
	"strconv"
	"strings"
)

// structuredAnswer is the JSON shape attribution-capable models are asked
// to produce. Segment ids stay untyped here because models emit them as
// strings or bare numbers interchangeably; they are coerced after parsing.
type structuredAnswer struct {
	Answer     string `json:"answer"`
	SegmentIDs []any  `json:"segment_ids"`
}

// parseStructuredAnswer extracts the answer and claimed segment ids from raw
// model output. Models wrap JSON in prose and code fences often enough that
// parsing tries progressively harder before giving up: the whole output,
// then the output with fences stripped, then the outermost brace span.
// ok is false when no usable answer could be recovered.
func parseStructuredAnswer(raw string) (answer string, segmentIDs []string, ok bool) {
	candidates := []string{strings.TrimSpace(raw)}

	if stripped := stripCodeFences(raw); stripped != "" {
		candidates = append(candidates, stripped)
	}

	if start, end := strings.Index(raw, "{"), strings.LastIndex(raw, "}"); start >= 0 && end > start {
		candidates = append(candidates, raw[start:end+1])
	}

	for _, candidate := range candidates {
		var parsed structuredAnswer
		if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
			continue
		}
		if strings.TrimSpace(parsed.Answer) == "" {
			continue
		}
		return strings.TrimSpace(parsed.Answer), coerceIDs(parsed.SegmentIDs), true
	}

	return "", nil, false
}

// coerceIDs stringifies claimed segment ids, accepting both string and
// numeric JSON values. Anything else is dropped.
func coerceIDs(raw []any) []string {
	ids := make([]string, 0, len(raw))
	for _, id := range raw {
		switch v := id.(type) {
		case string:
			ids = append(ids, v)
		case float64:
			ids = append(ids, strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}

// stripCodeFences removes a surrounding markdown code fence, with or without
// a language tag.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return ""
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// Drop the language tag line (e.g. "json").
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
