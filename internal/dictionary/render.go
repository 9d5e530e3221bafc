package dictionary

import (
	"fmt"
	"strings"
)

// Render produces the markdown for one decoded response: the headword as
// a heading, phonetics and senses per symbol group, the word forms, then
// the example sentences. Deterministic for a given response.
func Render(r *Response) string {
	lines := []string{fmt.Sprintf("### %s", r.WordName)}

	for _, symbol := range r.Symbols {
		lines = append(lines, "")

		ph := "-"
		if symbol.PhoneticUS != "" {
			ph += fmt.Sprintf(` US:\[%s\]`, symbol.PhoneticUS)
		}
		if symbol.PhoneticUK != "" {
			ph += fmt.Sprintf(` UK:\[%s\]`, symbol.PhoneticUK)
		}
		if len(ph) > 1 {
			lines = append(lines, ph)
		}

		for _, part := range symbol.Parts {
			lines = append(lines, fmt.Sprintf("\t- `%s`: %s",
				part.Part, strings.Join(part.Means, "; ")))
		}
	}

	forms := []struct {
		label  string
		values []string
	}{
		{"复数", r.Exchange.Plural},
		{"现在分词", r.Exchange.PresentParticiple},
		{"过去分词", r.Exchange.PastParticiple},
		{"过去式", r.Exchange.PastTense},
		{"第三人称单数", r.Exchange.ThirdPerson},
		{"比较级", r.Exchange.Comparative},
		{"最高级", r.Exchange.Superlative},
	}
	var formLines []string
	for _, form := range forms {
		if len(form.values) > 0 {
			formLines = append(formLines, fmt.Sprintf("\t- %s: %s",
				form.label, strings.Join(form.values, "; ")))
		}
	}
	if len(formLines) > 0 {
		lines = append(lines, "", "- 词态变化:")
		lines = append(lines, formLines...)
	}

	for _, sent := range r.Sentences {
		lines = append(lines, "> "+sent.Original, "> "+sent.Translation, "")
	}

	return strings.Join(lines, "\n")
}
