package staffing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
)

// movementPattern matches one "{count} desde {HH:MM} → {HH:MM}" clause.
var movementPattern = regexp.MustCompile(`^(\d+) desde (\d{2}:\d{2}) → (\d{2}:\d{2})`)

type parsedMovement struct {
	count int
	from  string
	to    string
}

// parseMovementText splits a ";"-joined Movements string into its clauses
// and parses each with movementPattern, skipping anything that doesn't
// match.
func parseMovementText(text string) []parsedMovement {
	if text == "" {
		return nil
	}
	var out []parsedMovement
	for _, part := range strings.Split(text, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := movementPattern.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		count, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, parsedMovement{count: count, from: m[2], to: m[3]})
	}
	return out
}

// PlanEscalation splits any movement whose span exceeds two hours into a
// chain of one-hour stepping movements (C8, I9). It returns a simulated
// copy annotated with each row's Escalation suggestion text, plus the flat
// list of escalation steps (the Mov_Escalonados report sheet's source).
func PlanEscalation(rows []model.AssignmentRow) ([]model.AssignmentRow, []model.EscalationStep) {
	out := make([]model.AssignmentRow, len(rows))
	copy(out, rows)

	var steps []model.EscalationStep

	for i := range out {
		clauses := parseMovementText(out[i].Movements)
		if len(clauses) == 0 {
			continue
		}

		var suggestions []string
		for _, c := range clauses {
			from, err1 := time.Parse("15:04", c.from)
			to, err2 := time.Parse("15:04", c.to)
			if err1 != nil || err2 != nil {
				continue
			}
			diffHours := int(to.Sub(from).Hours())
			if diffHours < 0 || diffHours <= 2 {
				continue
			}

			current := from
			for h := 0; h < diffHours; h++ {
				next := current.Add(time.Hour)
				suggestions = append(suggestions, escalationClause(c.count, current, next))
				steps = append(steps, model.EscalationStep{
					Date: out[i].Date,
					Move: c.count,
					From: current.Format("15:04"),
					To:   next.Format("15:04"),
				})
				current = next
			}
		}

		out[i].Escalation = strings.Join(suggestions, "; ")
	}

	return out, steps
}

func escalationClause(count int, from, to time.Time) string {
	return strconv.Itoa(count) + " desde " + from.Format("15:04") + " → " + to.Format("15:04")
}
