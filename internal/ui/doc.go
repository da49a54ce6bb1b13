package ui

// Package ui contains the Fyne-based user interface for the catalog browser.
// It wires user interactions (search edits, refresh, item taps) into the
// browse session and renders the filtered list, loading indicator, and empty
// states from its snapshots. All UI strings are localized via Localization.
