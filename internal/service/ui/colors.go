package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/chatlog/internal/core"
)

var (
	// TitleStyle uses ANSI 6 (cyan), readable on most terminals
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (green) for arguments and usage
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (bright black) keeps descriptions dim
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (yellow)
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	UserStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	BotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// SenderStyle picks the prefix style for a conversation entry.
func SenderStyle(s core.Sender) lipgloss.Style {
	switch {
	case s.IsSystem():
		return DescStyle
	case s == core.SenderBot:
		return BotStyle
	default:
		return UserStyle
	}
}
