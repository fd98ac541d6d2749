package utils

import "strings"

// StripCodeFence removes a wrapping markdown code fence from model output.
// Generative models frequently wrap JSON in ```json ... ``` even when told
// not to. The transform is total: input without a fence (or with only a
// partial one) comes back trimmed but otherwise untouched, so applying it
// twice yields the same text.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line, with or without a language tag.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	} else {
		// A lone fence token on a single line; nothing inside.
		return strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}

	// Drop everything from the closing fence on, if present.
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
