package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/utf8-stream/transcode"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	input textinput.Model
}

func newInspectorModel() *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "type text to inspect"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	return &inspectorModel{input: ti}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Unicode Inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	text := []byte(m.input.Value())
	if len(text) > 0 {
		cps := transcode.UTF8ToUTF32(text)
		units := transcode.UTF8ToUTF16(text)

		b.WriteString(labelStyle.Render("UTF-32"))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(fmt.Sprintf("%U", cps)))
		b.WriteByte('\n')

		b.WriteString(labelStyle.Render("UTF-16"))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(fmt.Sprintf("%04X", units)))
		b.WriteByte('\n')

		b.WriteString(labelStyle.Render("UTF-8 "))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(fmt.Sprintf("% X", text)))
		b.WriteByte('\n')

		b.WriteString(labelStyle.Render("chars "))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d code points, %d units, %d bytes",
			len(cps), len(units), len(text))))
		b.WriteByte('\n')

		if _, err := transcode.UTF8ToUTF32Strict(text); err != nil {
			b.WriteString(errorStyle.Render(err.Error()))
		} else {
			b.WriteString(okStyle.Render("well-formed UTF-8"))
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc or ctrl+c to quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInspectorModel())
	_, err := p.Run()
	return err
}
