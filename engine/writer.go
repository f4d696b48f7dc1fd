package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes one row per turn with the move and its search metrics.
func (r Record[S, A]) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{"step", "player", "action", "value", "nodes", "leaves", "cutoffs", "prunes"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write record header: %w", err)
	}

	for _, turn := range r.Turns {
		row := []string{
			strconv.Itoa(turn.Step),
			turn.Player.String(),
			fmt.Sprint(turn.Action),
			strconv.FormatFloat(turn.Value, 'g', -1, 64),
			strconv.FormatInt(turn.Metrics.Nodes, 10),
			strconv.FormatInt(turn.Metrics.Leaves, 10),
			strconv.FormatInt(turn.Metrics.Cutoffs, 10),
			strconv.FormatInt(turn.Metrics.Prunes, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write turn %d: %w", turn.Step, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
