package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/russross/blackfriday/v2"
)

const barWidth = 20

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "<", "&lt;", ">", "&gt;", "|", `\|`,
)

func escape(s string) string {
	return markdownEscaper.Replace(s)
}

// Markdown renders the full report.
func Markdown(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", Title)
	fmt.Fprintf(&b, "_Generated %s_\n\n", r.GeneratedAt.Format("2006-01-02 15:04 MST"))

	b.WriteString("## Impact Summary\n\n")
	fmt.Fprintf(&b, "- Total Feedback: %d\n", r.Total)
	fmt.Fprintf(&b, "- Negative Feedback: %.1f%%\n", r.NegativePercent)
	fmt.Fprintf(&b, "- Top Issue: %s\n\n", r.TopIssue)

	b.WriteString("## Sentiment Distribution\n\n")
	b.WriteString("| Sentiment | Count | Share |\n|---|---:|---:|\n")
	for _, s := range r.Sentiment {
		fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", s.Label, s.Count, s.Percent)
	}
	b.WriteString("\n")

	b.WriteString("## Issue Distribution\n\n")
	b.WriteString("| Issue Type | Count | |\n|---|---:|---|\n")
	longest := 0
	for _, bar := range r.Issues {
		if bar.Count > longest {
			longest = bar.Count
		}
	}
	for _, bar := range r.Issues {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", bar.Label, bar.Count, drawBar(bar.Count, longest))
	}
	b.WriteString("\n")

	b.WriteString("## Issue Breakdown\n\n")
	for _, m := range r.Alerts {
		prefix := "**Alert:**"
		if m.Level == LevelSuccess {
			prefix = "**OK:**"
		}
		fmt.Fprintf(&b, "- %s %s\n", prefix, m.Text)
	}
	b.WriteString("\n")

	b.WriteString("## Keywords\n\n")
	if len(r.Keywords) == 0 {
		b.WriteString("_none_\n\n")
	} else {
		fmt.Fprintf(&b, "%s\n\n", escape(strings.Join(r.Keywords, ", ")))
	}

	b.WriteString("## Smart Notes\n\n")
	for i, note := range r.Notes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, escape(note))
	}
	return b.String()
}

// HTML renders the Markdown report into a standalone page.
func HTML(r Report) string {
	body := blackfriday.Run([]byte(Markdown(r)),
		blackfriday.WithExtensions(blackfriday.CommonExtensions))

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n</head>\n<body>\n", Title)
	b.Write(body)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// Slack renders a short digest using Slack mrkdwn.
func Slack(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", Title)
	fmt.Fprintf(&b, "Total Feedback: %d | Negative: %.1f%% | Top Issue: %s\n", r.Total, r.NegativePercent, r.TopIssue)
	for _, m := range r.Alerts {
		icon := ":rotating_light:"
		if m.Level == LevelSuccess {
			icon = ":white_check_mark:"
		}
		fmt.Fprintf(&b, "%s %s\n", icon, m.Text)
	}
	if len(r.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(r.Keywords, ", "))
	}
	return b.String()
}

func drawBar(count, longest int) string {
	if longest == 0 || count == 0 {
		return ""
	}
	n := count * barWidth / longest
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// Text renders the report for a terminal.
func Text(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n\n", Title, strings.Repeat("=", len(Title)))
	fmt.Fprintf(&b, "Total Feedback:    %d\n", r.Total)
	fmt.Fprintf(&b, "Negative Feedback: %.1f%%\n", r.NegativePercent)
	fmt.Fprintf(&b, "Top Issue:         %s\n\n", r.TopIssue)

	b.WriteString("Sentiment Distribution\n")
	for _, s := range r.Sentiment {
		fmt.Fprintf(&b, "  %-10s %4d  %5.1f%%\n", s.Label, s.Count, s.Percent)
	}
	b.WriteString("\n")

	b.WriteString("Issue Distribution\n")
	longest := 0
	for _, bar := range r.Issues {
		longest = max(longest, bar.Count)
	}
	for _, bar := range r.Issues {
		fmt.Fprintf(&b, "  %-14s %4d  %s\n", bar.Label, bar.Count, drawBar(bar.Count, longest))
	}
	b.WriteString("\n")

	b.WriteString("Issue Breakdown\n")
	for _, m := range r.Alerts {
		tag := "[!]"
		if m.Level == LevelSuccess {
			tag = "[+]"
		}
		fmt.Fprintf(&b, "  %s %s\n", tag, m.Text)
	}
	b.WriteString("\n")

	if len(r.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords: %s\n\n", strings.Join(r.Keywords, ", "))
	}

	b.WriteString("Smart Notes\n")
	for i, note := range r.Notes {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, note)
	}
	return b.String()
}

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatSlack    = "slack"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Render dispatches to the renderer for format.
func Render(r Report, format string) (string, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return Text(r), nil
	case FormatMarkdown, "md":
		return Markdown(r), nil
	case FormatHTML:
		return HTML(r), nil
	case FormatSlack:
		return Slack(r), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
