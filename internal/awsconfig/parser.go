package awsconfig

import (
	"regexp"
	"sort"
	"strings"
)

var (
	sectionRegex  = regexp.MustCompile(`^\s*\[profile\s+([^\]]+)\]`)
	keyValueRegex = regexp.MustCompile(`^\s*([^=]+?)\s*=\s*(.*?)\s*$`)
)

// Parse turns the raw contents of an AWS config file into profiles sorted by
// name. The format is hand-edited and loosely structured, so the parser is
// deliberately lenient: blank lines, comments, sections other than
// "[profile X]", and lines that match nothing are skipped without error.
// Later duplicate keys within a section overwrite earlier ones; duplicate
// section names produce separate profiles.
func Parse(content string) []Profile {
	var profiles []Profile
	var currentName string
	var sectionOpen bool
	currentAttributes := make(map[string]string)

	finalize := func() {
		attrs := make(map[string]string, len(currentAttributes))
		for k, v := range currentAttributes {
			attrs[k] = v
		}
		profiles = append(profiles, Profile{Name: currentName, Attributes: attrs})
		currentAttributes = make(map[string]string)
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if captures := sectionRegex.FindStringSubmatch(line); captures != nil {
			if sectionOpen {
				finalize()
			}
			currentName = strings.TrimSpace(captures[1])
			sectionOpen = true
			continue
		}

		if sectionOpen {
			if captures := keyValueRegex.FindStringSubmatch(line); captures != nil {
				key := strings.TrimSpace(captures[1])
				value := strings.TrimSpace(captures[2])
				currentAttributes[key] = value
			}
			// Anything else inside a section is junk; skip it.
		}
		// Content outside any [profile ...] section (e.g. a [default]
		// settings block) is not a named profile; skip it too.
	}

	if sectionOpen {
		finalize()
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})

	return profiles
}
