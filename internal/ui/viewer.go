package ui

import (
	"fmt"
	"slices"
	"strings"

	"adsched/internal/domain"
	"adsched/internal/schedule"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Viewer displays a schedule in an interactive TUI
type Viewer interface {
	View(output *domain.ScheduleOutput) error
}

// slotInfo describes one play in a schedule
type slotInfo struct {
	Index      int // 0-based slot position
	Name       string
	Occurrence int // 1-based count of this ad so far
	Of         int // total plays of this ad
	Gap        int // slots since the previous play of this ad, 0 for the first
	Pass       int // 1-based rotation pass, 0 if unknown
}

// describeSlots computes per-slot details. Passes are only known when the
// slots are exactly the schedule built from the ads.
func describeSlots(output *domain.ScheduleOutput) []slotInfo {
	totals := make(map[string]int)
	for _, name := range output.Slots {
		totals[name]++
	}

	passOf := make([]int, len(output.Slots))
	if passes, err := schedule.Passes(output.Ads); err == nil {
		var flat []string
		var labels []int
		for p, pass := range passes {
			for _, name := range pass {
				flat = append(flat, name)
				labels = append(labels, p+1)
			}
		}
		if slices.Equal(flat, output.Slots) {
			copy(passOf, labels)
		}
	}

	seen := make(map[string]int)
	last := make(map[string]int)
	infos := make([]slotInfo, len(output.Slots))
	for i, name := range output.Slots {
		seen[name]++
		gap := 0
		if prev, ok := last[name]; ok {
			gap = i - prev
		}
		last[name] = i
		infos[i] = slotInfo{
			Index:      i,
			Name:       name,
			Occurrence: seen[name],
			Of:         totals[name],
			Gap:        gap,
			Pass:       passOf[i],
		}
	}
	return infos
}

// filterSlots returns the slots whose ad name matches pattern
func filterSlots(infos []slotInfo, pattern string) []slotInfo {
	if pattern == "" {
		return infos
	}
	var out []slotInfo
	for _, info := range infos {
		if MatchName(pattern, info.Name) {
			out = append(out, info)
		}
	}
	return out
}

// ScheduleViewer shows schedule slots in a list with a details pane
type ScheduleViewer struct{}

// NewScheduleViewer creates a new ScheduleViewer
func NewScheduleViewer() *ScheduleViewer {
	return &ScheduleViewer{}
}

// View displays the schedule in an interactive TUI
func (sv *ScheduleViewer) View(output *domain.ScheduleOutput) error {
	if len(output.Slots) == 0 {
		color.Yellow("Schedule is empty")
		return nil
	}

	all := describeSlots(output)
	visible := all
	pattern := ""

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	filterInput := tview.NewInputField().
		SetLabel("Filter: ").
		SetFieldWidth(30)

	updateHeader := func() {
		filterText := ""
		if pattern != "" {
			filterText = fmt.Sprintf(", filter [yellow]%s[white] (%d shown)", tview.Escape(pattern), len(visible))
		}
		headerView.SetText(fmt.Sprintf(" Schedule (%d plays, %d ads%s) | ↑↓ navigate, [yellow]/[white] filter, Esc clear, Ctrl+C exit ",
			len(all), len(output.Ads), filterText))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(visible) {
			detailsView.SetText("[gray]No matching slots[white]")
			return
		}
		detailsView.SetText(formatSlotDetails(visible[index]))
	}

	fillList := func() {
		list.Clear()
		for _, info := range visible {
			list.AddItem(listItemText(info), "", 0, nil)
		}
		updateHeader()
		updateDetails()
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(layout, 0, 1, true)

	showFilter := func(show bool) {
		mainLayout.RemoveItem(filterInput)
		if show {
			mainLayout.AddItem(filterInput, 1, 0, true)
			app.SetFocus(filterInput)
		} else {
			app.SetFocus(list)
		}
	}

	filterInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			pattern = strings.TrimSpace(filterInput.GetText())
			visible = filterSlots(all, pattern)
			fillList()
		}
		showFilter(false)
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyEsc:
			if pattern != "" {
				pattern = ""
				filterInput.SetText("")
				visible = all
				fillList()
			}
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case '/':
				showFilter(true)
				return nil
			case 'q':
				app.Stop()
				return nil
			}
		}
		return event
	})

	fillList()

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// listItemText formats a slot as a list entry; the name is escaped so
// brackets in it are not read as color tags
func listItemText(info slotInfo) string {
	return fmt.Sprintf("[yellow]%d.[white] %s", info.Index+1, tview.Escape(info.Name))
}

// formatSlotDetails formats a slot for display using tview color tags
func formatSlotDetails(info slotInfo) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[cyan]Slot:[white] %d\n", info.Index+1)
	fmt.Fprintf(&builder, "[cyan]Ad:[white] [yellow]%s[white]\n", tview.Escape(info.Name))
	fmt.Fprintf(&builder, "[cyan]Play:[white] %d of %d\n", info.Occurrence, info.Of)
	if info.Pass > 0 {
		fmt.Fprintf(&builder, "[cyan]Rotation pass:[white] %d\n", info.Pass)
	}
	if info.Gap > 0 {
		fmt.Fprintf(&builder, "[cyan]Since previous play:[white] %d slot(s)\n", info.Gap)
	} else {
		builder.WriteString("[gray]First play of this ad[white]\n")
	}

	return builder.String()
}
