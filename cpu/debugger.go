package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// debugModel drives an interactive, single-step TUI over a live Cpu.
// It is a generalization of the teacher's original program-loading
// debugger: instead of a bare FakeRam array, it steps the real
// Bus/Ppu/Cartridge stack one instruction at a time.
type debugModel struct {
	cpu    *Cpu
	prevPC uint16
	err    error
	lines  []string
}

func (m debugModel) Init() tea.Cmd { return nil }

func (m debugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			line, err := Trace(m.cpu)
			if err == nil {
				m.lines = append(m.lines, line)
				if len(m.lines) > 20 {
					m.lines = m.lines[len(m.lines)-20:]
				}
			}
			m.prevPC = m.cpu.PC
			if stepErr := m.cpu.Step(); stepErr != nil {
				m.err = stepErr
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders a single 16-byte RAM page as a line, highlighting
// the current PC if it falls within this page.
func (m debugModel) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.cpu.Read(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m debugModel) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	base := m.cpu.PC &^ 0x0F
	lines := []string{header}
	for i := -2; i <= 2; i++ {
		lines = append(lines, m.renderPage(uint16(int(base)+i*16)))
	}
	return strings.Join(lines, "\n")
}

func (m debugModel) status() string {
	var flags string
	for _, f := range []bool{
		m.cpu.Flags.Negative,
		m.cpu.Flags.Overflow,
		m.cpu.Flags.Unused,
		m.cpu.Flags.Break,
		m.cpu.Flags.Decimal,
		m.cpu.Flags.DisableInterrupt,
		m.cpu.Flags.Zero,
		m.cpu.Flags.Carry,
	} {
		if f {
			flags += "1 "
		} else {
			flags += "0 "
		}
	}
	return fmt.Sprintf(`
PC: %04x (was %04x)
 A: %02x  X: %02x  Y: %02x  SP: %02x
CYC: %d
N V U B D I Z C
%s`,
		m.cpu.PC, m.prevPC, m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP, m.cpu.Cycles, flags)
}

func (m debugModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		strings.Join(m.lines, "\n"),
		"",
		spew.Sdump(m.cpu.Flags),
	)
}

// Debug starts an interactive single-step TUI over an already-reset
// Cpu. Press space/j to step one instruction, q to quit.
func (c *Cpu) Debug() error {
	final, err := tea.NewProgram(debugModel{cpu: c}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(debugModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
