package ui

// Screen geometry for the loaded directory view. Mouse hit-testing relies on
// these line offsets, so renderDirectory must emit exactly this layout.
const (
	// searchLine is the screen line holding the search input.
	searchLine = 1

	// listTop is the first screen line of the user list.
	listTop = 3

	// detailsHeight is the blank separator plus the bordered details panel.
	detailsHeight = 7

	// footerHeight is the key help line.
	footerHeight = 1

	// minListRows keeps the list usable on very short terminals.
	minListRows = 3
)

// Fallback size until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Column limits for list rows.
const (
	// nameColumnMax caps the name column so emails stay visible.
	nameColumnMax = 32

	// rowGutter is the marker and spacing before the name column.
	rowGutter = 2
)

const searchPrompt = "Search: "
