package analytics

import (
	"fmt"
	"strings"
)

// Insights runs the fixed rule cascade over the current stats and returns
// the resulting lines in presentation order. Rules that find nothing emit
// no line, never a placeholder.
func (e *Engine) Insights() []string {
	stats := e.SessionStats()
	out := []string{}

	if line := overallBand(stats); line != "" {
		out = append(out, line)
	}
	if line := focusLine(stats); line != "" {
		out = append(out, line)
	}
	if line := degreeLine(stats); line != "" {
		out = append(out, line)
	}
	if line := confusionLine(stats, e.distinctItems()); line != "" {
		out = append(out, line)
	}
	return out
}

// overallBand maps session accuracy to a performance message.
func overallBand(stats SessionStats) string {
	if stats.TotalQuestions == 0 {
		return ""
	}
	switch {
	case stats.Accuracy >= 90:
		return "Excellent session! You're ready to advance."
	case stats.Accuracy >= 75:
		return "Good progress. You're almost there."
	case stats.Accuracy >= 60:
		return "Keep practicing. Target the weak items below."
	default:
		return "This level is still challenging. Slow down and listen twice before answering."
	}
}

// focusLine reports interval-variant focus/strength when variant data
// exists, otherwise falls back to per-item weak and strong lists.
func focusLine(stats SessionStats) string {
	if len(stats.VariantWeaknesses) > 0 {
		var parts []string
		for _, v := range stats.VariantWeaknesses {
			if v.Attempts >= 2 && v.Accuracy < 70 {
				parts = append(parts, fmt.Sprintf("Focus area: %s at %.0f%% accuracy.", v.Label, v.Accuracy))
				break
			}
		}
		// Strongest variants sort last.
		for i := len(stats.VariantWeaknesses) - 1; i >= 0; i-- {
			v := stats.VariantWeaknesses[i]
			if v.Attempts >= 2 && v.Accuracy >= 85 {
				parts = append(parts, fmt.Sprintf("Strength: %s at %.0f%% accuracy.", v.Label, v.Accuracy))
				break
			}
		}
		return strings.Join(parts, " ")
	}

	var weak, strong []string
	for _, w := range stats.ItemWeaknesses {
		if w.Attempts >= 2 && w.Accuracy < 60 && len(weak) < 3 {
			weak = append(weak, w.Label)
		}
	}
	for i := len(stats.ItemWeaknesses) - 1; i >= 0; i-- {
		w := stats.ItemWeaknesses[i]
		if w.Attempts >= 2 && w.Accuracy >= 90 && len(strong) < 2 {
			strong = append(strong, w.Label)
		}
	}

	var parts []string
	if len(weak) > 0 {
		parts = append(parts, "Work on: "+strings.Join(weak, ", ")+".")
	}
	if len(strong) > 0 {
		parts = append(parts, "Solid: "+strings.Join(strong, ", ")+".")
	}
	return strings.Join(parts, " ")
}

// degreeLine reports up to 2 shaky scale degrees.
func degreeLine(stats SessionStats) string {
	var shaky []string
	for _, d := range stats.DegreeWeaknesses {
		if d.Attempts >= 2 && d.Accuracy < 60 && len(shaky) < 2 {
			shaky = append(shaky, fmt.Sprintf("%s (%.0f%%)", d.Label, d.Accuracy))
		}
	}
	if len(shaky) == 0 {
		return ""
	}
	return "Shaky scale degrees: " + strings.Join(shaky, ", ") + "."
}

// confusionLine reports the single most frequent confusion, but only when
// more than two distinct item qualities were attempted — with just two
// possible answers every miss trivially "confuses" the only alternative.
func confusionLine(stats SessionStats, distinctItems int) string {
	if len(stats.Confusions) == 0 || distinctItems <= 2 {
		return ""
	}
	top := stats.Confusions[0]
	if top.Count < 2 {
		return ""
	}
	return fmt.Sprintf("You answered %s when it was actually %s %d times.", top.Mistook, top.ActuallyWas, top.Count)
}
