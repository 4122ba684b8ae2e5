// Package advisor answers free-text study questions without a language
// model by matching keywords against a fixed set of topics.
package advisor

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/samber/lo"
)

type Topic string

const (
	TopicPriorities Topic = "priorities"
	TopicWeakest    Topic = "weakest"
	TopicHours      Topic = "hours"
	TopicExamTips   Topic = "exam_tips"
	TopicSchedule   Topic = "schedule"
	TopicMotivation Topic = "motivation"
	TopicFallback   Topic = "fallback"
)

// Answer is a reply split into display lines.
type Answer struct {
	Topic Topic
	Lines []string
}

func (a *Answer) Text() string {
	return strings.Join(a.Lines, "\n")
}

// Snapshot is the study state a question is answered against.
type Snapshot struct {
	Subjects   []domain.Subject
	Schedule   []domain.ScheduledSubject
	TotalHours float64
	Now        time.Time
}

// topics are tried in order; the first whose keyword appears in the
// lower-cased question wins.
var topics = []struct {
	topic    Topic
	keywords []string
	respond  func(Snapshot) []string
}{
	{TopicPriorities, []string{"priorit", "focus", "important"}, priorities},
	{TopicWeakest, []string{"weak", "worst", "struggling", "behind"}, weakest},
	{TopicHours, []string{"enough", "daily", "hours"}, hours},
	{TopicExamTips, []string{"tip", "upcoming", "exam", "advice"}, examTips},
	{TopicSchedule, []string{"schedule", "plan", "allocat"}, schedule},
	{TopicMotivation, []string{"motivat", "tired", "burnout", "stress"}, motivation},
}

// Respond matches the question to a topic and builds the reply.
func Respond(question string, snap Snapshot) *Answer {
	q := strings.ToLower(question)
	for _, t := range topics {
		if lo.ContainsBy(t.keywords, func(k string) bool { return strings.Contains(q, k) }) {
			return &Answer{Topic: t.topic, Lines: t.respond(snap)}
		}
	}
	return &Answer{Topic: TopicFallback, Lines: fallback(q, snap)}
}

// MatchTopic reports which topic a question would be routed to.
func MatchTopic(question string) Topic {
	return Respond(question, Snapshot{}).Topic
}

type subjectDays struct {
	domain.Subject
	DaysLeft int
}

func withDays(snap Snapshot) []subjectDays {
	return lo.Map(snap.Subjects, func(s domain.Subject, _ int) subjectDays {
		return subjectDays{Subject: s, DaysLeft: domain.CeilDaysUntil(s.ExamDate, snap.Now)}
	})
}

func byUrgency(snap Snapshot) []subjectDays {
	out := withDays(snap)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysLeft < out[j].DaysLeft })
	return out
}

func priorities(snap Snapshot) []string {
	if len(snap.Subjects) == 0 {
		return []string{"You haven't added any subjects yet. Add some with `optistudy subject add` and I can help you prioritize!"}
	}
	lines := []string{"Based on your exam dates and preparedness levels, here's my priority ranking:"}
	ranked := byUrgency(snap)
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	for i, s := range ranked {
		urgency := "🟢 Low"
		switch {
		case s.DaysLeft <= 3:
			urgency = "🔴 Critical"
		case s.DaysLeft <= 7:
			urgency = "🟡 Moderate"
		}
		lines = append(lines, fmt.Sprintf("%d. %s: %dd left, prep %d/5 (%s)", i+1, s.Name, s.DaysLeft, s.Preparedness, urgency))
	}
	return append(lines, "Focus your energy on subjects with the least time remaining and lowest preparedness.")
}

func weakest(snap Snapshot) []string {
	if len(snap.Subjects) == 0 {
		return []string{"No subjects to analyze yet! Add them with `optistudy subject add`."}
	}
	subjects := withDays(snap)
	sort.SliceStable(subjects, func(i, j int) bool { return subjects[i].Preparedness < subjects[j].Preparedness })
	w := subjects[0]
	return []string{
		fmt.Sprintf("Your weakest subject is %s with a preparedness of %d/5 and the exam is in %d days.", w.Name, w.Preparedness, w.DaysLeft),
		fmt.Sprintf("💡 Suggestion: Allocate extra study blocks for %s and focus on the core concepts first.", w.Name),
	}
}

// RecommendedHours is the daily budget suggested for a subject count.
func RecommendedHours(subjects int) float64 {
	switch {
	case subjects >= 5:
		return 8
	case subjects >= 3:
		return 6
	default:
		return 4
	}
}

func hours(snap Snapshot) []string {
	if snap.TotalHours == 0 {
		return []string{"You haven't set your daily study hours yet. Set them with `optistudy settings set --hours`!"}
	}
	n := len(snap.Subjects)
	optimal := RecommendedHours(n)
	var verdict string
	if snap.TotalHours >= optimal {
		verdict = fmt.Sprintf("✅ You're studying %sh/day which looks good for %d subjects!", trimFloat(snap.TotalHours), n)
	} else {
		verdict = fmt.Sprintf("⚠️ You're studying %sh/day, but with %d subjects I'd recommend at least %sh/day.",
			trimFloat(snap.TotalHours), n, trimFloat(optimal))
	}
	return []string{verdict, "💡 Tip: Break sessions into 45-minute focused blocks with 10-minute breaks for best retention."}
}

func examTips(snap Snapshot) []string {
	upcoming := lo.Filter(byUrgency(snap), func(s subjectDays, _ int) bool { return s.DaysLeft > 0 && s.DaysLeft <= 7 })
	if len(upcoming) == 0 {
		return []string{
			"No exams within the next 7 days, keep up the steady pace! 😊",
			"💡 Use this time to review weak areas and build strong foundations.",
		}
	}
	plural := ""
	if len(upcoming) > 1 {
		plural = "s"
	}
	lines := []string{fmt.Sprintf("You have %d exam%s coming up this week:", len(upcoming), plural)}
	for _, s := range upcoming {
		lines = append(lines, fmt.Sprintf("• %s in %dd (prep: %d/5)", s.Name, s.DaysLeft, s.Preparedness))
	}
	return append(lines,
		"💡 My tips:",
		"• 🎯 Focus on high-weight topics first",
		"• 🗓️ Do practice tests under timed conditions",
		"• 😴 Get 7-8 hours of sleep before exam day",
		"• 📝 Review your chapter notes with `optistudy chapter list`",
	)
}

func schedule(snap Snapshot) []string {
	if len(snap.Schedule) == 0 {
		return []string{"No schedule generated yet! Run `optistudy plan generate` to create your optimized study plan."}
	}
	lines := []string{"Here's your current study allocation:"}
	for _, s := range snap.Schedule {
		lines = append(lines, fmt.Sprintf("• %s: %.1fh/day", s.Name, s.Hours))
	}
	total := lo.SumBy(snap.Schedule, func(s domain.ScheduledSubject) float64 { return s.Hours })
	return append(lines, fmt.Sprintf("Total: %.1fh/day. The schedule prioritizes subjects with closer exams and lower preparedness.", total))
}

func motivation(Snapshot) []string {
	return []string{
		"💪 You've got this! Here are some motivation tips:",
		"• 🎯 Set small, achievable goals for each study session",
		"• 🏆 Reward yourself after completing a chapter",
		"• 🧘 Take breaks, the Pomodoro technique works great",
		"• 👫 Study with friends for accountability",
		"• 🌟 Visualize how great you'll feel after acing your exams!",
	}
}

func fallback(q string, snap Snapshot) []string {
	n := len(snap.Subjects)
	plural := "s"
	if n == 1 {
		plural = ""
	}
	replies := [][]string{
		{
			"That's a great question! While I work on getting smarter, here's what I can tell you:",
			fmt.Sprintf("You have %d subject%s to study for. Try asking me about your priorities, weakest subject, or study tips for more specific help!", n, plural),
		},
		{
			"🤔 I'm still learning, but I can help with:",
			"• Subject prioritization",
			"• Identifying weak areas",
			"• Study time analysis",
			"• Exam preparation tips",
			"Try asking about one of these topics!",
		},
		{
			"Interesting question! Currently I can analyze your study data and give recommendations.",
			"For now, try asking about your schedule, priorities, or exam tips.",
		},
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(q))
	return replies[h.Sum32()%uint32(len(replies))]
}

func trimFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
