package ui

// Result card geometry. Every card has the same height so rows line up and
// the selected card can be scrolled into view arithmetically.
const (
	// cardContentLines is type, blank, title, blank, year, score.
	cardContentLines = 6

	// cardHeight adds vertical padding (2) and border (2).
	cardHeight = cardContentLines + 4

	// cardMinWidth is the narrowest a card may be before dropping a column.
	cardMinWidth = 30

	// cardGap is the horizontal space between cards.
	cardGap = 1

	// maxGridColumns matches the three-column layout on wide screens.
	maxGridColumns = 3
)

// Search row sizing.
const (
	maxInputWidth   = 48
	minInputWidth   = 12
	searchRowChrome = 40 // input border/padding/prompt plus both buttons

	// chromeLines is everything above and below the grid: header, blank,
	// search row (3 with border), blank, footer.
	chromeLines = 7
)

// diagnosticLines is how much of the log the diagnostics overlay loads.
const diagnosticLines = 200
