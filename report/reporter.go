package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"sprint-burndown/burndown"
)

// ExportToJSON saves the burndown result to a JSON file
func ExportToJSON(result *burndown.Result, filename string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// ExportToCSV saves the daily series to a CSV file, one row per day
func ExportToCSV(result *burndown.Result, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"date", "ideal_points", "remaining_points"}); err != nil {
		return err
	}
	for i, d := range result.Dates {
		record := []string{
			d.Format("2006-01-02"),
			strconv.FormatFloat(result.Ideal[i], 'f', 2, 64),
			strconv.FormatFloat(result.Actual[i], 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// PrintSummary displays a formatted burndown summary to the console
func PrintSummary(result *burndown.Result) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("SPRINT BURNDOWN REPORT - %s\n", result.Project)
	fmt.Println(strings.Repeat("=", 60))

	if len(result.Dates) > 0 {
		fmt.Printf("Sprint: %s to %s (%d days)\n",
			result.Dates[0].Format("2006-01-02"),
			result.Dates[len(result.Dates)-1].Format("2006-01-02"),
			len(result.Dates))
	}
	fmt.Printf("Items: %d | Total Points: %.1f\n", result.ItemCount, result.TotalPoints)

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-12s %10s %10s\n", "Date", "Ideal", "Actual")
	for i, d := range result.Dates {
		fmt.Printf("%-12s %10.1f %10.1f\n", d.Format("2006-01-02"), result.Ideal[i], result.Actual[i])
	}

	if len(result.Warnings) > 0 {
		fmt.Println(strings.Repeat("-", 60))
		for _, w := range result.Warnings {
			fmt.Printf("⚠️  %s\n", w)
		}
	}

	fmt.Println(strings.Repeat("=", 60))
}
