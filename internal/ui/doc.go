// Package ui contains the Bubble Tea program that powers the emoji picker.
// The Model type focuses on message orchestration, while dedicated helpers
// own navigation, filter input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so key presses, mouse events,
//     resizes, and copy results are handled by focused functions.
//   - Key presses are interpreted by the current Phase. Browsing moves over
//     the category menu, Editing edits the filter (internal/ui/input.go), and
//     Selecting moves over the entry grid (internal/ui/navigation.go).
//   - Committing an entry moves the model to PhaseDone and returns the single
//     copy command produced by the internal/ui/command bus. Its CopiedMsg
//     records the Outcome and quits the program.
//
// State ownership:
//   - The entry grid, filter text, and cursors live in internal/ui/state.
//   - The catalog is read-only; every refilter or category browse derives a
//     fresh entry list from it.
package ui
