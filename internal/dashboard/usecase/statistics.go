package usecase

import (
	"fmt"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
)

// Statistics renders the describe table and the central tendency of every
// numeric column, or an info block when there is none.
func Statistics(t *entity.Table) []entity.Block {
	blocks := []entity.Block{entity.Heading(2, "Summary Statistics")}

	summaries := Describe(t)
	if len(summaries) == 0 {
		return append(blocks, entity.Info("No numerical columns found in the dataset."))
	}

	blocks = append(blocks, tableBlock(DescribeTable(summaries)), entity.Heading(3, "Central Tendency"))
	for _, s := range summaries {
		blocks = append(blocks,
			entity.Heading(4, s.Column),
			entity.Text(fmt.Sprintf("Mean: %s", format2(s.Mean))),
			entity.Text(fmt.Sprintf("Median: %s", format2(s.Median))),
			entity.Text(fmt.Sprintf("Mode: %s", entity.FormatNumber(s.Mode))),
		)
	}

	return blocks
}
