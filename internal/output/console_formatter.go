package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/synthfeed/internal/calculation"
	"github.com/rpgo/synthfeed/internal/domain"
)

// ConsoleFormatter provides a concise console style summary of every panel.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(dashboard *domain.Dashboard) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, dashboard.Title)
	fmt.Fprintln(&buf, "================================")
	if dashboard.Caption != "" {
		fmt.Fprintln(&buf, dashboard.Caption)
	}
	for _, p := range dashboard.Panels {
		s := calculation.Summarize(p.Points())
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s (seed %d)\n", p.Title, p.Seed)
		if s.Points == 0 {
			fmt.Fprintln(&buf, "  no data")
			continue
		}
		fmt.Fprintf(&buf, "  Points=%d From=%s To=%s\n", s.Points, s.FirstDate, s.LastDate)
		fmt.Fprintf(&buf, "  First=%s Last=%s Min=%s Max=%s\n", s.First, s.Last, s.Min, s.Max)
		fmt.Fprintf(&buf, "  Change=%s (%s)\n", FormatSigned(s.Change), FormatPercentage(s.ChangePercent))
	}
	return buf.Bytes(), nil
}
