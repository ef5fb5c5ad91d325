package parser

import (
	"regexp"
	"strings"
)

var (
	typeRe       = regexp.MustCompile(`(?i)Type:\s*([A-Za-z]+)`)
	componentsRe = regexp.MustCompile(`(?i)Affected Components:\s*([^\n\r]+)`)
)

// ParseIncidentType returns the lowercased entry type ("incident",
// "maintenance", ...) or "" when the description has no Type: line.
func ParseIncidentType(description string) string {
	m := typeRe.FindStringSubmatch(description)
	if m == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(m[1]))
}

// ParseComponents returns the component names listed on the
// "Affected Components:" line. Names are trimmed and empty tokens dropped.
func ParseComponents(description string) []string {
	m := componentsRe.FindStringSubmatch(description)
	if m == nil {
		return nil
	}

	var components []string
	for _, part := range strings.Split(m[1], ",") {
		if name := strings.TrimSpace(part); name != "" {
			components = append(components, name)
		}
	}
	return components
}
