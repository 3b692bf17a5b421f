package folio

import "strings"

// Sidecar describes an auxiliary vertical column rendered next to the main
// tree, row-aligned with it (e.g. a delta column).
type Sidecar struct {
	// OutputFormat is the format template rendered for each node.
	OutputFormat string
	// ConditionFormat, when non-empty, gates the output: a node only shows
	// OutputFormat if rendering ConditionFormat yields non-blank text. The
	// row itself is always present, so two sidecars stay aligned even when
	// one is conditionally blank.
	ConditionFormat string
	// Title labels the column; derived from OutputFormat when empty.
	Title string
	// RenderFolders renders expanded folders' own content; when false their
	// rows stay blank (but present, for alignment). Shared folders and
	// collapsed folders always render theirs.
	RenderFolders bool
}

// RenderSidecar produces the sidecar rows for this folder's subtree, one row
// per visible row of the main tree except the root. When the main tree's
// root is visible, a bold title line is prepended to the first row so the
// two columns keep their header rows aligned.
func (f *Folder) RenderSidecar(sc Sidecar, hideRoot bool, th *Theme) []string {
	if th == nil {
		th = DefaultTheme()
	}
	var rows []string
	f.sidecarRows(sc, &rows, th, true)
	if !hideRoot && len(rows) > 0 {
		title := sc.Title
		if title == "" {
			title = strings.ToUpper(strings.Trim(sc.OutputFormat, "[]"))
		}
		rows[0] = th.Title.Render(title) + "\n" + rows[0]
	}
	return rows
}

// sidecarRows follows the same print policy as the main tree: one row per
// node, blank rows preserved, recursion only into expanded folders.
func (f *Folder) sidecarRows(sc Sidecar, rows *[]string, th *Theme, isRoot bool) {
	render := ""
	if sc.RenderFolders || f.shared || f.display != DisplayExpanded {
		render = sidecarContent(f, sc, th)
	}
	if f.display != DisplayExpanded && f.newline {
		render += "\n"
	}
	if !isRoot {
		*rows = append(*rows, render)
	}
	if f.display == DisplayExpanded {
		for _, child := range f.children {
			child.renderSidecarInto(sc, rows, th)
		}
	}
}

func (f *Folder) renderSidecarInto(sc Sidecar, rows *[]string, th *Theme) {
	f.sidecarRows(sc, rows, th, false)
}

// sidecarContent applies the conditional-content rule for one node.
func sidecarContent(n Node, sc Sidecar, th *Theme) string {
	if sc.ConditionFormat == "" || strings.TrimSpace(renderNode(n, sc.ConditionFormat, th)) != "" {
		return renderNode(n, sc.OutputFormat, th)
	}
	return ""
}

// SidecarColumn joins sidecar rows into one printable block, ready to be
// placed next to the rendered main tree.
func SidecarColumn(rows []string) string {
	return strings.Join(rows, "\n")
}
