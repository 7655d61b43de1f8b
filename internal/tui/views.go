package tui

import "erhu/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewPicker = messages.ViewPicker
	ViewChart  = messages.ViewChart
)

type SwitchViewMsg = messages.SwitchViewMsg
type SelectKeyMsg = messages.SelectKeyMsg
