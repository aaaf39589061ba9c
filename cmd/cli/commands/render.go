package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jakechorley/staff-rota/pkg/core/rota"
	"github.com/jakechorley/staff-rota/pkg/core/services"
	"github.com/jakechorley/staff-rota/pkg/db"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bankStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

const emptyCell = "-"

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func dayHeaders(first string) []string {
	headers := []string{first}
	for _, day := range rota.Weekdays {
		headers = append(headers, day.String())
	}
	return headers
}

// scheduleRows builds one row per staff member followed by bankRows rows of
// unfilled shifts. Bank rows are dropped entirely when nothing was banked.
func scheduleRows(result *rota.ScheduleResult, bankRows int) [][]string {
	labels := result.AssignmentLabels()

	rows := make([][]string, 0, len(result.Staff)+bankRows)
	for _, member := range result.Staff {
		row := []string{member.Name}
		for _, day := range rota.Weekdays {
			label, ok := labels[day][member.Name]
			if !ok {
				label = emptyCell
			}
			row = append(row, label)
		}
		rows = append(rows, row)
	}

	if result.BankCount() == 0 {
		return rows
	}

	bank := result.BankLabels(bankRows)
	rowCount := bankRows
	if rowCount <= 0 {
		for _, day := range rota.Weekdays {
			rowCount = max(rowCount, len(bank[day]))
		}
	}

	for i := 0; i < rowCount; i++ {
		row := []string{fmt.Sprintf("Bank %d", i+1)}
		for _, day := range rota.Weekdays {
			cell := ""
			if i < len(bank[day]) {
				cell = bank[day][i]
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	return rows
}

func renderSchedule(result *rota.ScheduleResult, bankRows int) string {
	rows := scheduleRows(result, bankRows)
	for _, row := range rows[len(result.Staff):] {
		for i := range row {
			row[i] = bankStyle.Render(row[i])
		}
	}
	return newTable(dayHeaders("Staff")...).Rows(rows...).String()
}

func hoursRows(result *rota.ScheduleResult) [][]string {
	rows := make([][]string, 0, len(result.Staff))
	for _, member := range result.Staff {
		lastType := string(member.LastType)
		if lastType == "" {
			lastType = emptyCell
		}
		rows = append(rows, []string{
			member.Name,
			formatHours(member.ContractedHours),
			formatHours(member.AssignedHours),
			formatHours(member.ContractedHours + rota.OvertimeBuffer),
			strconv.Itoa(member.ShiftCount),
			lastType,
		})
	}
	return rows
}

func renderWeeklyHours(result *rota.ScheduleResult) string {
	return newTable("Staff", "Contracted", "Assigned", "Max", "Shifts", "Type").
		Rows(hoursRows(result)...).
		String()
}

func projectionRows(report *services.ProjectionReport) [][]string {
	rows := make([][]string, 0, len(report.Projections))
	for _, p := range report.Projections {
		rows = append(rows, []string{
			p.Name,
			formatHours(p.ContractedHours),
			formatHours(p.ProjectedHours),
		})
	}
	return rows
}

func renderProjections(report *services.ProjectionReport) string {
	return newTable("Staff", "Weekly", fmt.Sprintf("%s %d", report.Month, report.Year)).
		Rows(projectionRows(report)...).
		String()
}

func staffRows(staff []db.Staff) [][]string {
	rows := make([][]string, 0, len(staff))
	for _, s := range staff {
		rows = append(rows, []string{s.Name, formatHours(s.ContractedHours), dimStyle.Render(s.ID)})
	}
	return rows
}

func renderStaff(staff []db.Staff) string {
	return newTable("Name", "Hours", "ID").Rows(staffRows(staff)...).String()
}

// formatHours drops trailing zeros so 40 prints as "40" and 12.25 as "12.25"
func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
