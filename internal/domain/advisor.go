package domain

import (
	"fmt"
	"strings"

	m "wpprep.dev/pkg/wpprep/internal/model"
)

// Advise derives the ordered advisory lines for a snapshot. Categories are
// visited in catalog order; a category missing from the state is treated as
// entirely missing.
func Advise(catalog Catalog, state m.State) []m.Advice {
	var advice []m.Advice

	for _, category := range catalog {
		result, ok := state.Category(category.Key)
		if !ok {
			result = absent(category)
		}

		lines := classify(category, result)
		if len(lines) > 0 && category.Gap {
			lines[0].Gap = true
		}

		advice = append(advice, lines...)
	}

	return advice
}

func absent(category Category) m.CategoryState {
	checks := make([]m.CheckResult, 0, len(category.Checks))
	for _, check := range category.Checks {
		checks = append(checks, m.CheckResult{Name: check.Name})
	}

	return m.CategoryState{Key: category.Key, Leaf: category.Leaf, Checks: checks}
}

func classify(category Category, result m.CategoryState) []m.Advice {
	line := func(mark m.Marker, text string) m.Advice {
		return m.Advice{Category: category.Key, Mark: mark, Text: text}
	}

	messages := category.Advice

	switch category.Rule {
	case RuleWarnIfMissing:
		if !result.Complete() {
			return []m.Advice{line(m.MarkWarn, messages.Missing)}
		}
	case RuleInventory:
		var lines []m.Advice

		if missing := result.Missing(); len(missing) > 0 {
			lines = append(lines, line(m.MarkInstall, list(messages.Missing, missing)))
		}

		if present := result.Present(); len(present) > 0 {
			lines = append(lines, line(m.MarkSkip, list(messages.Present, present)))
		}

		return lines
	case RuleMissingList:
		if missing := result.Missing(); len(missing) > 0 {
			return []m.Advice{line(m.MarkInstall, list(messages.Missing, missing))}
		}

		return []m.Advice{line(m.MarkSkip, messages.Present)}
	case RuleMissingOnly:
		if missing := result.Missing(); len(missing) > 0 {
			return []m.Advice{line(m.MarkInstall, list(messages.Missing, missing))}
		}
	case RuleStaged:
		switch stage := firstMissing(result); {
		case stage == 0:
			return []m.Advice{line(m.MarkInstall, messages.Missing)}
		case stage > 0:
			return []m.Advice{line(m.MarkMerge, messages.Partial)}
		default:
			return []m.Advice{line(m.MarkSkip, messages.Present)}
		}
	case RuleCreate:
		if !result.Complete() {
			return []m.Advice{line(m.MarkInstall, messages.Missing)}
		}

		return []m.Advice{line(m.MarkSkip, messages.Present)}
	case RuleCreateOrMerge:
		if !result.Complete() {
			return []m.Advice{line(m.MarkInstall, messages.Missing)}
		}

		return []m.Advice{line(m.MarkMerge, messages.Present)}
	case RuleGate:
		for _, name := range category.Gate {
			if !result.Passed(name) {
				return []m.Advice{line(m.MarkInstall, messages.Missing)}
			}
		}

		return []m.Advice{line(m.MarkSkip, messages.Present)}
	}

	return nil
}

// firstMissing returns the index of the first failed check, or -1.
func firstMissing(result m.CategoryState) int {
	if len(result.Checks) == 0 {
		return 0
	}

	for i, check := range result.Checks {
		if !check.OK {
			return i
		}
	}

	return -1
}

func list(format string, names []string) string {
	if !strings.Contains(format, "%s") {
		return format
	}

	return fmt.Sprintf(format, strings.Join(names, ", "))
}
