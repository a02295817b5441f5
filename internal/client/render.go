package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/fintrace-client/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	highRiskScore   = 70
	mediumRiskScore = 40
	shortIDLength   = 8
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	highRiskStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mediumRiskStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowRiskStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// renderResponse renders a fraud report when the body has that shape and
// falls back to indented JSON otherwise.
func renderResponse(resp models.AnalysisResponse) string {
	report, err := resp.Report()
	if err != nil || isEmptyReport(report) {
		return indentJSON(resp)
	}
	return renderReport(report)
}

func isEmptyReport(r models.AnalysisReport) bool {
	return len(r.SuspiciousAccounts) == 0 &&
		len(r.FraudRings) == 0 &&
		r.Summary == (models.ReportSummary{})
}

func indentJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

func renderReport(r models.AnalysisReport) string {
	var b strings.Builder

	b.WriteString(renderSummaryLine(r.Summary))
	b.WriteString("\n")

	if len(r.FraudRings) > 0 {
		b.WriteString("\n" + titleStyle.Render("Fraud rings") + "\n")
		rows := make([][]string, 0, len(r.FraudRings))
		for _, ring := range r.FraudRings {
			rows = append(rows, []string{
				ring.RingID,
				ring.PatternType,
				strconv.Itoa(len(ring.MemberAccounts)),
				riskStyle(ring.RiskScore).Render(formatScore(ring.RiskScore)),
			})
		}
		b.WriteString(renderTable([]string{"Ring", "Pattern", "Members", "Risk"}, rows))
		b.WriteString("\n")
	}

	if len(r.SuspiciousAccounts) > 0 {
		b.WriteString("\n" + titleStyle.Render("Suspicious accounts") + "\n")
		rows := make([][]string, 0, len(r.SuspiciousAccounts))
		for _, acc := range r.SuspiciousAccounts {
			rows = append(rows, []string{
				acc.AccountID,
				riskStyle(acc.SuspicionScore).Render(formatScore(acc.SuspicionScore)),
				formatScore(acc.Confidence * 100),
				strings.Join(acc.DetectedPatterns, ", "),
			})
		}
		b.WriteString(renderTable([]string{"Account", "Score", "Confidence %", "Patterns"}, rows))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderSummaryLine renders the report counters in a box.
func renderSummaryLine(s models.ReportSummary) string {
	lines := []string{
		titleStyle.Render("Analysis summary"),
		fmt.Sprintf("Accounts analyzed:   %d", s.TotalAccountsAnalyzed),
		fmt.Sprintf("Accounts flagged:    %d", s.SuspiciousAccountsFlagged),
		fmt.Sprintf("Fraud rings:         %d", s.FraudRingsDetected),
		"Average risk score:  " + riskStyle(s.AvgRiskScore).Render(formatScore(s.AvgRiskScore)),
		fmt.Sprintf("Processing time:     %.2fs", s.ProcessingTimeSeconds),
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func renderSummary(text string) string {
	return boxStyle.Render(titleStyle.Render("Summary") + "\n" + strings.TrimSpace(text))
}

func renderHistory(records []models.AnalysisRecord) string {
	if len(records) == 0 {
		return helpStyle.Render("no analyses recorded yet")
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		status := "ok"
		if !rec.Success {
			status = "failed"
			if rec.StatusCode != 0 {
				status = fmt.Sprintf("failed (%d)", rec.StatusCode)
			}
		}

		rows = append(rows, []string{
			shortID(rec.ID),
			rec.CreatedAt.Local().Format(time.DateTime),
			rec.FileName,
			strconv.FormatInt(rec.FileSize, 10),
			status,
			rec.Duration.Round(time.Millisecond).String(),
			rec.BaseURL,
		})
	}

	return renderTable([]string{"ID", "When", "File", "Bytes", "Status", "Took", "Backend"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

func riskStyle(score float64) lipgloss.Style {
	switch {
	case score >= highRiskScore:
		return highRiskStyle
	case score >= mediumRiskScore:
		return mediumRiskStyle
	default:
		return lowRiskStyle
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// shortID keeps the random tail of a UUIDv7; its head is the timestamp.
func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[len(id)-shortIDLength:]
}
