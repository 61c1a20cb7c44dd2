package layout

// Spacing constants for consistent padding and margins
const (
	SpacingXS = 1
	SpacingSM = 2
	SpacingMD = 3
	SpacingLG = 4
)

// Standard UI element heights
const (
	TitleHeight      = 2
	SearchFormHeight = 5
	FooterHeight     = 3
	PanelHeight      = 9
	HistoryRowHeight = 4
	IssueRowHeight   = 4
)

// Width bounds for the content column
const (
	MinContentWidth = 40
	MaxContentWidth = 96
	DefaultWidth    = 100
	DefaultHeight   = 30
)

// ContentWidth clamps the terminal width to the content column.
func ContentWidth(windowWidth int) int {
	w := windowWidth - SpacingLG
	if w < MinContentWidth {
		return MinContentWidth
	}
	if w > MaxContentWidth {
		return MaxContentWidth
	}
	return w
}

// ListHeight returns the lines left for a scrollable list once the fixed
// sections above and below it are subtracted.
func ListHeight(windowHeight, fixed int) int {
	h := windowHeight - fixed - FooterHeight
	if h < 5 {
		return 5
	}
	return h
}

// VisibleRows returns how many rows of rowHeight fit into height.
func VisibleRows(height, rowHeight int) int {
	if rowHeight <= 0 {
		return 1
	}
	n := height / rowHeight
	if n < 1 {
		return 1
	}
	return n
}
