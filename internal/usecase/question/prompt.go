package question

import (
	"fmt"
	"strings"

	"docqa-backend/internal/entity"
)

// buildPrompt assembles the user prompt from the retrieved segments and the
// question. Attribution-capable models are asked for structured JSON naming
// the segment ids they used; smaller models get a plain-text instruction
// because they cannot emit reliable JSON.
func buildPrompt(profile entity.ModelProfile, query string, segments []*entity.RetrievedSegment) string {
	var b strings.Builder

	b.WriteString("Context:\n")
	for _, segment := range segments {
		fmt.Fprintf(&b, "\n[segment %s]\n%s\n", segment.ID, segment.Content)
	}

	fmt.Fprintf(&b, "\nQuestion: %s\n\n", query)

	if profile.SupportsAttribution {
		b.WriteString(`Respond with a single JSON object of the form ` +
			`{"answer": "<your answer>", "segment_ids": ["<id>", ...]} ` +
			`where segment_ids lists the ids of the context segments you actually used. ` +
			`Use an empty list if you used none.`)
	} else {
		b.WriteString("Answer in plain text using only the context above.")
	}

	return b.String()
}
