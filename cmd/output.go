package cmd

import (
	"encoding/json"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kasuboski/discern/pkg/library"
	"github.com/kasuboski/discern/pkg/video"
	"github.com/mattn/go-isatty"
)

// isTerminal reports whether w writes to a terminal
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// classified is the outcome of classifying a single path
type classified struct {
	Path  string         `json:"path"`
	Video *library.Movie `json:"video,omitempty"`
	Error string         `json:"error,omitempty"`
}

func renderVideos(w io.Writer, results []classified) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Path", "Name", "Packaging", "Year", "3D", "Flags", "Size"})

	for _, r := range results {
		if r.Video == nil {
			tw.AppendRow(table.Row{r.Path, "", "", "", "", r.Error, ""})
			continue
		}

		m := r.Video
		tw.AppendRow(table.Row{m.Path, m.Name, m.Packaging, year(m.ProductionYear), string(m.StereoFormat), flags(m.Item), m.Size})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	tw.Render()
}

func renderSummary(w io.Writer, found, removed int, packaging map[video.Packaging]int) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Packaging", "Videos"})

	keys := make([]string, 0, len(packaging))
	for p := range packaging {
		keys = append(keys, string(p))
	}
	sort.Strings(keys)

	for _, k := range keys {
		tw.AppendRow(table.Row{k, packaging[video.Packaging(k)]})
	}
	tw.AppendFooter(table.Row{"found", found})
	tw.AppendFooter(table.Row{"removed", removed})
	tw.Render()
}

func year(y *int) string {
	if y == nil {
		return ""
	}
	return strconv.Itoa(*y)
}

func flags(item video.Item) string {
	var f []string
	if item.IsInMixedFolder {
		f = append(f, "mixed")
	}
	if item.IsPlaceholder {
		f = append(f, "stub")
	}
	if item.IsShortcut {
		f = append(f, "shortcut")
	}
	return strings.Join(f, ",")
}
