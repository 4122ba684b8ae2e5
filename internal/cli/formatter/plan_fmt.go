package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/optistudy/internal/contract"
	"github.com/alexanderramin/optistudy/internal/insight"
)

const hoursBarWidth = 20

// FormatPlan renders the allocation table, the explanation and any warnings.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder

	b.WriteString(Header("Study plan"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s of %s allocated  %s\n\n",
		Bold(FormatHours(resp.AllocatedHours)), FormatHours(resp.TotalHours),
		Dim(fmt.Sprintf("min %s · max %s per subject · %d passes",
			FormatHours(resp.MinHours), FormatHours(resp.MaxHours), resp.Passes)))

	rows := make([][]string, 0, len(resp.Allocations))
	for _, a := range resp.Allocations {
		lock := ""
		if a.Locked {
			lock = Dim("🔒")
		}
		rows = append(rows, []string{
			insight.SubjectIcon(a.Name) + " " + a.Name,
			FormatHours(a.Hours),
			RenderHoursBar(a.Hours, resp.MaxHours, hoursBarWidth),
			fmt.Sprintf("%.3f", a.RawScore),
			fmt.Sprintf("%dd", a.DaysRemaining),
			lock,
		})
	}
	b.WriteString(RenderTable([]string{"SUBJECT", "HOURS", "", "SCORE", "EXAM", ""}, rows))

	if e := resp.Explanation; e != nil {
		b.WriteString("\n")
		b.WriteString(FormatExplanation(e))
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("⚠"), w)
		}
	}
	if resp.ScheduleID == "" {
		b.WriteString("\n" + Dim("Dry run: plan not saved.") + "\n")
	}
	return b.String()
}

func FormatExplanation(e *insight.Explanation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Bold(e.Headline))
	for _, r := range e.Reasons {
		fmt.Fprintf(&b, "  %s %s\n", StyleGreen.Render("+"), r)
	}
	if len(e.Others) > 0 {
		b.WriteString("\n")
		for _, o := range e.Others {
			fmt.Fprintf(&b, "  %s %s\n", Dim("·"), o)
		}
	}
	fmt.Fprintf(&b, "\n%s\n", Dim(e.Footer))
	return b.String()
}
