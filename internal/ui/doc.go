// Package ui contains the Bubble Tea program that powers the character
// picker. The Model type focuses on message orchestration, while dedicated
// helpers own navigation, text input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key and resize messages are routed through a typed handler registry so
//     each tea.Msg is handled by a focused function; everything else is
//     handed to the embedded text input (cursor blink ticks, mostly).
//   - Mode switches, confirmation, and selection movement live in
//     internal/ui/navigation.go. Typed-text interpretation (hex codes, hint
//     labels, exclusion rules) lives in internal/ui/input.go.
//
// State ownership:
//   - The candidate grid is owned by picker.Table; the session only tells it
//     what to show and asks it to lay itself out.
//   - Candidate recomputation is keyed on (mode, query): repeated renders
//     and selection moves reuse the previous candidate list, so search work
//     happens only when the inputs actually change.
//   - The mode choice is written to the settings bag as it changes; the
//     caller persists the bag once the program exits.
//
// The View builds a list of styled lines (header, prompt, chosen character,
// grid rows, status) and defers all terminal handling to Bubble Tea's
// renderer.
package ui
