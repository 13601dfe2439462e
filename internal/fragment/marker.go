package fragment

import (
	"regexp"
	"strings"
)

const (
	// StartMarker opens one or more named fragments.
	StartMarker = "#docfragment"
	// EndMarker closes one or more named fragments.
	EndMarker = "#enddocfragment"
)

var quotedNameRe = regexp.MustCompile(`"([^"]*)"`)

// FindStarts returns the fragment names opened on line, if any.
func FindStarts(line string) []string {
	return lookup(line, StartMarker)
}

// FindEnds returns the fragment names closed on line, if any.
func FindEnds(line string) []string {
	return lookup(line, EndMarker)
}

// lookup extracts the comma-separated quoted names that follow marker.
// The marker may appear anywhere in the line, so any comment syntax works.
func lookup(line, marker string) []string {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return nil
	}
	rest := line[idx+len(marker):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '"' {
		// "#docfragmentfoo" is not a marker.
		return nil
	}

	var names []string
	for _, part := range strings.Split(rest, ",") {
		m := quotedNameRe.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		names = append(names, m[1])
	}
	return names
}
