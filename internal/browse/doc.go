package browse

// Package browse owns the screen state for one catalog browsing session:
// the fetched items, the search text, the loading flag, and the currently
// selected detail target. The UI mutates state only through the Session
// operations and re-renders from its snapshot reads.
