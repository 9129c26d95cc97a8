package staffing

import (
	"fmt"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
)

// ApplyMovements folds resolved movements back into a simulated copy of
// rows: the targeted row's count increases by the movement's size, its
// state is forced to LIMITE, and its Movements text is set to
// "{move} desde {from} → {to}" (Q1: assignment, not append — C6 never
// produces two movements targeting the same row, so the overwrite case is
// never actually exercised by this resolver).
func ApplyMovements(rows []model.AssignmentRow, movements []model.Movement) []model.AssignmentRow {
	simulated := make([]model.AssignmentRow, len(rows))
	copy(simulated, rows)

	for _, mv := range movements {
		for i := range simulated {
			if simulated[i].Date.Equal(mv.Date) && simulated[i].Interval == mv.Interval {
				simulated[i].Count += mv.Move
				simulated[i].State = model.StateLimite
				simulated[i].Movements = fmt.Sprintf("%d desde %s → %s", mv.Move, mv.From, mv.To)
			}
		}
	}

	return simulated
}
