package state

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// UIState holds the list's presentation state: viewport, cursor, search and
// confirmation modes.
type UIState struct {
	viewport viewport.Model
	width    int
	height   int

	cursor int

	searchMode  bool
	searchQuery string
	unreadOnly  bool

	confirmClear bool
}

// NewUIState creates a UIState with default dimensions.
func NewUIState() *UIState {
	return &UIState{
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight),
		width:    defaultViewportWidth,
		height:   defaultViewportHeight,
	}
}

// Viewport returns the viewport model.
func (u *UIState) Viewport() *viewport.Model {
	return &u.viewport
}

// Width returns the current width of the UI.
func (u *UIState) Width() int {
	return u.width
}

// SetSize updates the dimensions and rebuilds the viewport.
func (u *UIState) SetSize(width, height int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
	u.height = height
	if height <= headerFooterLines {
		u.height = defaultViewportHeight
	}
	u.viewport = viewport.New(u.width, u.height-headerFooterLines)
}

// Cursor returns the current cursor position.
func (u *UIState) Cursor() int {
	return u.cursor
}

// MoveCursorUp moves the cursor up one position if possible.
func (u *UIState) MoveCursorUp() {
	if u.cursor > 0 {
		u.cursor--
	}
}

// MoveCursorDown moves the cursor down one position if possible.
func (u *UIState) MoveCursorDown(listLen int) {
	if u.cursor < listLen-1 {
		u.cursor++
	}
}

// AdjustCursorBounds keeps the cursor within the list.
func (u *UIState) AdjustCursorBounds(listLen int) {
	if u.cursor >= listLen {
		u.cursor = listLen - 1
	}
	if u.cursor < 0 {
		u.cursor = 0
	}
}

// EnsureCursorVisible scrolls the viewport so the cursor row is shown.
func (u *UIState) EnsureCursorVisible() {
	offset := u.viewport.YOffset
	height := u.viewport.Height
	if height <= 0 {
		return
	}
	if u.cursor < offset {
		u.viewport.SetYOffset(u.cursor)
	}
	if u.cursor >= offset+height {
		u.viewport.SetYOffset(u.cursor - height + 1)
	}
}

// IsSearchMode returns whether search input is active.
func (u *UIState) IsSearchMode() bool {
	return u.searchMode
}

// SetSearchMode toggles search input. Leaving search clears the query.
func (u *UIState) SetSearchMode(active bool) {
	u.searchMode = active
	if !active {
		u.searchQuery = ""
	}
}

// FinishSearch leaves search input and keeps the query applied.
func (u *UIState) FinishSearch() {
	u.searchMode = false
}

// SearchQuery returns the current search query.
func (u *UIState) SearchQuery() string {
	return u.searchQuery
}

// AppendToSearchQuery appends runes to the search query.
func (u *UIState) AppendToSearchQuery(r []rune) {
	u.searchQuery += string(r)
}

// BackspaceSearchQuery removes the last rune from the search query.
func (u *UIState) BackspaceSearchQuery() {
	runes := []rune(u.searchQuery)
	if len(runes) > 0 {
		u.searchQuery = string(runes[:len(runes)-1])
	}
}

// UnreadOnly reports whether seen rows are hidden.
func (u *UIState) UnreadOnly() bool {
	return u.unreadOnly
}

// ToggleUnreadOnly flips the unread-only filter.
func (u *UIState) ToggleUnreadOnly() {
	u.unreadOnly = !u.unreadOnly
}

// IsConfirmingClear returns whether the clear-all prompt is shown.
func (u *UIState) IsConfirmingClear() bool {
	return u.confirmClear
}

// SetConfirmingClear shows or hides the clear-all prompt.
func (u *UIState) SetConfirmingClear(active bool) {
	u.confirmClear = active
}
