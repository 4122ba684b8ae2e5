package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/optistudy/internal/contract"
	"github.com/alexanderramin/optistudy/internal/insight"
)

func FormatDashboard(resp *contract.DashboardResponse) string {
	var b strings.Builder

	next := "--"
	if resp.NextExamDays != nil {
		next = fmt.Sprintf("%dd", *resp.NextExamDays)
	}
	weekly := "--"
	if resp.HasSchedule {
		weekly = FormatHours(resp.WeeklyHours)
	}
	stats := RenderTable(
		[]string{"SUBJECTS", "NEXT EXAM", "WITHIN 30D", "AVG PREP", "DAILY", "THIS WEEK"},
		[][]string{{
			fmt.Sprintf("%d", resp.SubjectCount),
			next,
			fmt.Sprintf("%d", resp.ExamsWithin30Days),
			fmt.Sprintf("%d%%", resp.AvgPreparednessPct),
			FormatHours(resp.TotalHours),
			weekly,
		}},
	)
	b.WriteString(RenderBox("Overview", strings.TrimRight(stats, "\n")))
	b.WriteString("\n\n")

	if len(resp.PrepBars) > 0 {
		b.WriteString(Header("Preparedness"))
		b.WriteString("\n")
		for _, p := range resp.PrepBars {
			fmt.Fprintf(&b, "  %-16s %s\n", p.SubjectName, RenderProgress(float64(p.Pct)/100, 20))
		}
		b.WriteString("\n")
	}

	b.WriteString(Header("Today"))
	b.WriteString("\n")
	if len(resp.Today) == 0 {
		b.WriteString(Dim("  No schedule yet. Run `optistudy plan generate`.") + "\n")
	} else {
		b.WriteString(FormatTimeline(resp.Today))
		fmt.Fprintf(&b, "  %s\n", Dim(fmt.Sprintf("%d of %d sessions done", resp.TodayDone, len(resp.Today))))
	}

	if len(resp.Notifications) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Alerts"))
		b.WriteString("\n")
		b.WriteString(FormatNotifications(resp.Notifications))
	}
	return b.String()
}

// FormatTimeline renders today's back-to-back sessions.
func FormatTimeline(blocks []insight.TimeBlock) string {
	var b strings.Builder
	for _, tb := range blocks {
		mark := StyleBlue.Render("○")
		name := tb.Name
		if tb.Done {
			mark = StyleGreen.Render("✔")
			name = Dim(name)
		}
		fmt.Fprintf(&b, "  %s %8s - %-8s %s %s\n", mark, tb.StartLabel, tb.EndLabel, name, Dim(FormatHours(tb.Hours)))
	}
	return b.String()
}

func FormatNotifications(ns []insight.Notification) string {
	var b strings.Builder
	for _, n := range ns {
		fmt.Fprintf(&b, "  %s %s %s\n", n.Icon, NotificationStyle(n.Kind).Render(n.Message), Dim(n.When))
	}
	return b.String()
}
