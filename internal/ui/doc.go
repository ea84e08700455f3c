// Package ui provides the Bubble Tea terminal interface for roster.
//
// # Architecture Overview
//
// The Model follows the Elm architecture: Update turns key, mouse and load
// messages into directory actions, dispatches them through state.Store, and
// caches the resulting snapshot. View is a pure function of that snapshot plus
// UI-only state (focus, cursor, scroll offset, theme and terminal size).
//
// # Package Structure
//
//   - app.go: Model, Update loop, commands and the Run entry point
//   - directory_view.go: Loading, failed and loaded screens
//   - help.go: Help overlay built from the key map
//   - keys.go: Key bindings and footer help
//   - layout.go: Screen geometry shared by rendering and mouse hit-testing
//   - theme.go: Color palettes and Lipgloss styles
//
// # Screens
//
//   - Loading: spinner and "Loading users..."
//   - Failed: "Error loading users: <message>"
//   - Loaded: title, search input, the filtered list (or a no-results
//     message), the details panel for the selected user and a help footer
//
// # Event Flow
//
//  1. Init starts the spinner and the one-shot load command
//  2. The load command calls Loader.Load with the program context
//  3. usersLoadedMsg dispatches LoadSucceeded or LoadFailed into the store
//  4. Typing dispatches SetQuery; Enter dispatches Confirm or Activate
//  5. Mouse clicks on list rows dispatch Activate
//
// # Key Bindings
//
//   - Typing: edit the search query (search focused)
//   - Enter: select the first match (search) or the cursor row (list)
//   - Tab/Down: move focus to the list
//   - j/k, g/G, pgup/pgdown: move the cursor
//   - / or Tab: return to the search input
//   - Esc: clear the query (search) or the selection (list)
//   - T: cycle theme, ?: help, q: quit, Ctrl+C: quit anywhere
package ui
