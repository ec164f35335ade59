package tui

type ViewState int

const (
	StateColors ViewState = iota
	StateScopes
)
