package report

import (
	"fmt"
	"strings"

	"skirmish/internal/combat"
)

const barWidth = 40

// RenderHistory draws the survivor counts of both armies over the rounds of
// one battle as horizontal bars, scaled against the larger starting roster.
func RenderHistory(history []combat.Step) string {
	if len(history) == 0 {
		return ""
	}
	max := 1
	for _, step := range history {
		if step.AliveA > max {
			max = step.AliveA
		}
		if step.AliveB > max {
			max = step.AliveB
		}
	}

	bar := func(n int) string {
		w := n * barWidth / max
		if n > 0 && w == 0 {
			w = 1
		}
		return strings.Repeat("#", w)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%5s  %-*s %4s  %-*s %4s\n", "round", barWidth, "army_a", "", barWidth, "army_b", ""))
	for _, step := range history {
		b.WriteString(fmt.Sprintf("%5d  %-*s %4d  %-*s %4d\n",
			step.Round, barWidth, bar(step.AliveA), step.AliveA, barWidth, bar(step.AliveB), step.AliveB))
	}
	return b.String()
}
