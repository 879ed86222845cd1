package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hjops/alarmtop/engine"
	"github.com/hjops/alarmtop/model"
	"github.com/hjops/alarmtop/source"
	"github.com/hjops/alarmtop/view"
)

// ── ANSI color/style codes ──────────────────────────────────────────────────

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"

	fgRed    = "\033[31m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgCyan   = "\033[36m"
	fgOrange = "\033[38;5;208m"

	clearScreen = "\033[H\033[2J"
)

// badgeANSI maps badge color tokens to ANSI codes for -watch output.
var badgeANSI = map[string]string{
	"red":    ansiBold + fgRed,
	"orange": fgOrange,
	"yellow": fgYellow,
	"blue":   fgBlue,
	"gray":   ansiDim,
}

// watch column widths in terminal cells.
const (
	wTime     = 20
	wSeverity = 10
	wMessage  = 44
	wActive   = 10
	wInactive = 13
)

// runWatch prints the newest history page to the terminal with auto-refresh.
// count limits the number of iterations; 0 runs until interrupted.
func runWatch(src source.Source, interval time.Duration, count, pageSize int) error {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for i := 0; ; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		alarms, err := src.Fetch(ctx)
		cancel()
		if err != nil {
			return err
		}

		if count == 0 || count > 1 {
			fmt.Print(clearScreen)
		}
		printWatchTable(alarms, pageSize)

		if count > 0 && i+1 >= count {
			return nil
		}

		select {
		case <-sig:
			return nil
		case <-time.After(interval):
		}
	}
}

// printWatchTable paints the first history page with plain ANSI codes.
func printWatchTable(alarms []model.AlarmRecord, pageSize int) {
	p := engine.Paginate(alarms, 1, pageSize)
	tbl := view.HistoryTable(p.Alarms)

	now := time.Now().Format("15:04:05")
	fmt.Printf("%s%salarmtop%s  %s%s  ·  %d alarms%s\n\n",
		ansiBold, fgCyan, ansiReset, ansiDim, now, p.TotalItems, ansiReset)

	widths := []int{wTime, wSeverity, wMessage, wActive, wInactive}
	var hdr strings.Builder
	for i, c := range tbl.Columns {
		hdr.WriteString(cellPad(strings.ToUpper(c.Title), widths[i]))
		hdr.WriteString("  ")
	}
	fmt.Printf("  %s%s%s\n", ansiBold, hdr.String(), ansiReset)
	fmt.Printf("  %s%s%s\n", ansiDim, strings.Repeat("─", 103), ansiReset)

	for _, row := range tbl.Rows {
		var line strings.Builder
		for i, cell := range row.Cells {
			w := widths[i]
			switch {
			case cell.Badge != nil:
				code := badgeANSI[cell.Badge.Color]
				line.WriteString(code + cellPad(cell.Badge.Label, w) + ansiReset)
			case tbl.Columns[i].Muted:
				line.WriteString(ansiDim + cellPad(cell.Text, w) + ansiReset)
			default:
				line.WriteString(cellPad(cell.Text, w))
			}
			line.WriteString("  ")
		}
		fmt.Printf("  %s\n", line.String())
	}

	if p.TotalPages > 1 {
		fmt.Printf("\n  %sshowing page 1/%d — use the TUI or API for more%s\n",
			ansiDim, p.TotalPages, ansiReset)
	}
}

// cellPad pads or rune-truncates s to width, ellipsizing on overflow.
func cellPad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		if width <= 1 {
			return string(r[:width])
		}
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
