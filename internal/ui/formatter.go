package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"adsched/internal/domain"

	"github.com/fatih/color"
)

var palette = []color.Attribute{
	color.FgCyan,
	color.FgGreen,
	color.FgYellow,
	color.FgMagenta,
	color.FgBlue,
	color.FgRed,
	color.FgHiCyan,
	color.FgHiGreen,
}

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out. A nil out means color.Output.
func NewFormatter(out io.Writer) *Formatter {
	if out == nil {
		out = color.Output
	}
	return &Formatter{out: out}
}

// adColors assigns each name a color in order of first appearance
func adColors(names []string) map[string]*color.Color {
	colors := make(map[string]*color.Color)
	for _, name := range names {
		if _, ok := colors[name]; ok {
			continue
		}
		colors[name] = color.New(palette[len(colors)%len(palette)])
	}
	return colors
}

// PrintSchedule prints the schedule in lines of chunkSize ads
func (f *Formatter) PrintSchedule(slots []string, chunkSize int) {
	if len(slots) == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "Schedule is empty")
		return
	}
	if chunkSize <= 0 {
		chunkSize = 1
	}

	color.New(color.FgGreen).Fprintf(f.out, "Schedule with %d play(s):\n\n", len(slots))

	colors := adColors(slots)
	for start := 0; start < len(slots); start += chunkSize {
		end := start + chunkSize
		if end > len(slots) {
			end = len(slots)
		}
		parts := make([]string, 0, end-start)
		for _, name := range slots[start:end] {
			parts = append(parts, colors[name].Sprint(name))
		}
		fmt.Fprintln(f.out, strings.Join(parts, " "))
	}
}

// PrintPlan prints the ads and their required plays
func (f *Formatter) PrintPlan(ads []domain.Ad) {
	cyan := color.New(color.FgCyan)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                          Ad Plan                              ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	for i, ad := range ads {
		fmt.Fprintf(f.out, "│ %-31s │ ", ad.Name)
		color.New(color.FgWhite).Fprintf(f.out, "%-27d │\n", ad.Plays)
		if i < len(ads)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")
	fmt.Fprintf(f.out, "Total plays: %d\n\n", domain.TotalPlays(ads))
}

// PrintStats prints how each ad is spread over a schedule of total slots
func (f *Formatter) PrintStats(stats []domain.AdStats, total int) {
	cyan := color.New(color.FgCyan)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                    Schedule Distribution                      ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	fmt.Fprintln(f.out, "┌───────────────┬────────┬─────────┬────────┬────────┬─────────┐")
	fmt.Fprintf(f.out, "│ %-13s │ %6s │ %7s │ %6s │ %6s │ %7s │\n", "Ad", "Plays", "Share", "First", "Last", "Max gap")
	fmt.Fprintln(f.out, "├───────────────┼────────┼─────────┼────────┼────────┼─────────┤")
	for _, st := range stats {
		share := 0.0
		if total > 0 {
			share = float64(st.Plays) * 100 / float64(total)
		}
		first, last := "-", "-"
		if st.Plays > 0 {
			first = fmt.Sprint(st.First + 1)
			last = fmt.Sprint(st.Last + 1)
		}
		fmt.Fprintf(f.out, "│ %-13s │ %6d │ %6.1f%% │ %6s │ %6s │ %7d │\n", st.Name, st.Plays, share, first, last, st.MaxGap)
	}
	fmt.Fprintln(f.out, "└───────────────┴────────┴─────────┴────────┴────────┴─────────┘")
}

// PrintJSON writes the schedule export as indented JSON
func (f *Formatter) PrintJSON(output *domain.ScheduleOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}
	_, err = fmt.Fprintln(f.out, string(data))
	return err
}
