package lists

import (
	"fmt"
	"strings"
)

// Body of a block that holds no entries
const EmptyList = "List is empty."

// Separates the rank from the entry in every line
const separator = ". "

// Encode renders the entries as a numbered list, starting at 1
func Encode(title string, entries []string) Block {
	if len(entries) == 0 {
		return Block{Title: title, Body: EmptyList}
	}
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("%d%s%s", i+1, separator, entry)
	}
	return Block{Title: title, Body: strings.Join(lines, "\n")}
}

// Decode recovers the entries of a block rendered by Encode.
// Only the first ". " of a line is treated as the separator, so entries
// containing it come back cut. Lines without a separator are kept as they are
func Decode(block *Block) []string {
	if block == nil || block.Body == "" || block.Body == EmptyList {
		return []string{}
	}
	lines := strings.Split(block.Body, "\n")
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, entry, found := strings.Cut(line, separator); found {
			entries = append(entries, entry)
		} else {
			entries = append(entries, line)
		}
	}
	return entries
}
