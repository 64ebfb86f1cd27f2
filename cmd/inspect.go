package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/usecase"
)

func newInspectCommand() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "inspect <file.csv>",
		Short: "Print the missing-value report and summary statistics of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return inspect(cmd.OutOrStdout(), raw, rows)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 5, "number of preview rows, 0 to skip the preview")

	return cmd
}

func inspect(w io.Writer, raw []byte, rows int) error {
	tbl, err := usecase.Load(raw)
	if err != nil {
		return err
	}
	report := usecase.Clean(tbl)

	fmt.Fprintf(w, "%d rows, %d columns\n\n", tbl.Rows, len(tbl.Columns))

	if rows > 0 {
		fmt.Fprintln(w, "Dataset Preview")
		t := tablewriter.NewWriter(w)
		t.SetHeader(tbl.Names())
		t.AppendBulk(tbl.Head(rows))
		t.Render()
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Missing Values Before Cleaning")
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Column", "Kind", "Missing"})
	for _, c := range tbl.Columns {
		t.Append([]string{c.Name, string(c.Kind), strconv.Itoa(report.Count(c.Name))})
	}
	t.Render()
	fmt.Fprintln(w)

	summaries := usecase.Describe(tbl)
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No numerical columns found in the dataset.")
		return nil
	}

	fmt.Fprintln(w, "Summary Statistics")
	writeTable(w, usecase.DescribeTable(summaries))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Central Tendency")
	t = tablewriter.NewWriter(w)
	t.SetHeader([]string{"Column", "Mean", "Median", "Mode"})
	for _, s := range summaries {
		t.Append([]string{
			s.Column,
			strconv.FormatFloat(s.Mean, 'f', 2, 64),
			strconv.FormatFloat(s.Median, 'f', 2, 64),
			entity.FormatNumber(s.Mode),
		})
	}
	t.Render()

	return nil
}

func writeTable(w io.Writer, td *entity.TableData) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(append([]string{""}, td.Columns...))
	for i, row := range td.Rows {
		t.Append(append([]string{td.Index[i]}, row...))
	}
	t.Render()
}
