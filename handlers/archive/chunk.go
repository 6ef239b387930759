package archive

import "strings"

// MessageLimit is Discord's content length cap per message.
const MessageLimit = 2000

// SplitContent breaks message content into webhook-sized chunks, preferring
// newline boundaries and falling back to a hard cut inside overlong lines.
func SplitContent(content string, limit int) []string {
	if content == "" {
		return nil
	}
	if len(content) <= limit {
		return []string{content}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.Split(content, "\n") {
		for len(line) > limit {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			chunks = append(chunks, line[:limit])
			line = line[limit:]
		}
		// +1 for the newline separator
		if current.Len() > 0 && current.Len()+len(line)+1 > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
