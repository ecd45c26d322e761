package tui

// AppVersion is shown in the dashboard header.
const AppVersion = "1.0.0"
