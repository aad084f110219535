package handler

import "github.com/charmbracelet/lipgloss"

// Terminal styles for the game screen. lipgloss downgrades or drops colors
// automatically when the output is not a capable terminal.
var (
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	styleInfo   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleAccent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleGood   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleFail   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleBold   = lipgloss.NewStyle().Bold(true)
)
