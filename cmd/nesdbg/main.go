// Command nesdbg is an interactive bubbletea debugger for the gones NES
// emulator: step one CPU instruction at a time, watch registers, flags and
// a page of memory around the program counter.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"gones/internal/cartridge"
	"gones/internal/cpu"
	"gones/internal/system"
)

func main() {
	romFile := flag.String("rom", "", "Path to NES ROM file")
	flag.Parse()

	if *romFile == "" {
		log.Fatal("a ROM file is required: -rom <file>")
	}

	f, err := os.Open(*romFile)
	if err != nil {
		log.Fatalf("open ROM: %v", err)
	}
	cart, err := cartridge.LoadFromReader(f)
	f.Close()
	if err != nil {
		log.Fatalf("load ROM: %v", err)
	}

	sys := system.New()
	sys.LoadCartridge(cart)

	rec := &lastRecord{}
	sys.SetTracer(rec)

	m := model{sys: sys, rec: rec}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatalf("debugger: %v", err)
	}
}

// lastRecord is a cpu.Tracer that remembers only the most recent record, for
// the debugger's per-step opcode dump.
type lastRecord struct {
	rec cpu.Record
	set bool
}

func (l *lastRecord) Trace(rec cpu.Record) {
	l.rec = rec
	l.set = true
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
)

type model struct {
	sys    *system.System
	rec    *lastRecord
	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "j":
		m.prevPC = m.sys.CPU.PC
		m.sys.StepInstruction()
	case "f":
		m.sys.RunFrame()
	}
	return m, nil
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render("nesdbg"),
		m.pageTable(),
		"",
		m.status(),
		"",
		m.opcodeDump(),
		"",
		"space/j: step instruction   f: run frame   q: quit",
	)
}

// pageTable renders 8 rows of 16 bytes each: the 128-byte aligned block that
// contains the current PC, highlighting the byte under PC.
func (m model) pageTable() string {
	pc := m.sys.CPU.PC
	start := pc &^ 0x7F
	var b strings.Builder
	for row := uint16(0); row < 8; row++ {
		base := start + row*16
		fmt.Fprintf(&b, "%04X | ", base)
		for col := uint16(0); col < 16; col++ {
			addr := base + col
			v := m.sys.Bus.Read(addr)
			if addr == pc {
				b.WriteString(currentStyle.Render(fmt.Sprintf("[%02X]", v)))
				b.WriteByte(' ')
			} else {
				fmt.Fprintf(&b, " %02X  ", v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m model) status() string {
	c := m.sys.CPU
	flags := []struct {
		name string
		set  bool
	}{
		{"N", c.N}, {"V", c.V}, {"B", c.B}, {"D", c.D}, {"I", c.I}, {"Z", c.Z}, {"C", c.C},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "PC: %04X (prev %04X)\nA: %02X  X: %02X  Y: %02X  SP: %02X\n", c.PC, m.prevPC, c.A, c.X, c.Y, c.SP)
	for _, f := range flags {
		if f.set {
			b.WriteString(f.name + " ")
		} else {
			b.WriteString(". ")
		}
	}
	return b.String()
}

func (m model) opcodeDump() string {
	if !m.rec.set {
		return "(no instruction executed yet)"
	}
	return spew.Sdump(m.rec.rec)
}
