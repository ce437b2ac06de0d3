package generator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pathlight-health/casebook/internal/followups"
)

var sectionPatterns = []struct {
	letter  string
	pattern *regexp.Regexp
}{
	{"A", regexp.MustCompile(`(?i)^A\)\s*Reasoning\s*Trace`)},
	{"B", regexp.MustCompile(`(?i)^B\)\s*Discharge\s*Timing\s*Dynamics`)},
	{"C", regexp.MustCompile(`(?i)^C\)\s*SNF\s*Patient\s*State`)},
}

var (
	numberedLine = regexp.MustCompile(`^(\d+)[.)]\s*(.+)$`)
	sectionLead  = regexp.MustCompile(`^[A-C]\)`)
	ordinalLead  = regexp.MustCompile(`^\d+[.)]`)
)

// Parse extracts question seeds from a sectioned model reply. Numbered lines
// under a recognized section header become questions; unnumbered lines that
// are neither headers nor numbered are treated as continuations of the
// previous question and joined with a space. Anything outside a recognized
// section is discarded.
func Parse(reply string) []followups.Seed {
	var seeds []followups.Seed
	var section string

	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if letter, ok := matchSection(line); ok {
			section = letter
			continue
		}

		if section == "" {
			continue
		}

		if m := numberedLine.FindStringSubmatch(line); m != nil {
			ordinal, _ := strconv.Atoi(m[1])
			seeds = append(seeds, followups.Seed{
				Section: section,
				Ordinal: ordinal,
				Text:    strings.TrimSpace(m[2]),
			})
			continue
		}

		if len(seeds) > 0 && !sectionLead.MatchString(line) && !ordinalLead.MatchString(line) {
			seeds[len(seeds)-1].Text += " " + line
		}
	}

	return seeds
}

func matchSection(line string) (string, bool) {
	for _, sp := range sectionPatterns {
		if sp.pattern.MatchString(line) {
			return sp.letter, true
		}
	}
	return "", false
}
