// Package system implements the scheduler that ties the CPU, bus, and PPU
// together at the fixed 1:3 CPU:PPU cycle ratio and delivers NMI strictly
// between instructions (SPEC_FULL.md §4.5).
package system

import (
	"gones/internal/apu"
	"gones/internal/bus"
	"gones/internal/cartridge"
	"gones/internal/cpu"
	"gones/internal/input"
	"gones/internal/ppu"
)

// System owns the whole machine: bus, CPU, PPU, APU, and controller ports.
// It is the only type a host binary needs to construct.
type System struct {
	Bus   *bus.Bus
	CPU   *cpu.CPU
	PPU   *ppu.PPU
	APU   *apu.APU
	Ports *input.Ports
}

// New constructs an idle system with no cartridge loaded. LoadCartridge
// must be called before RunFrame produces anything meaningful.
func New() *System {
	p := ppu.New()
	a := apu.New()
	ports := input.NewPorts()
	b := bus.New(p, a, ports)
	c := cpu.New(b)

	return &System{Bus: b, CPU: c, PPU: p, APU: a, Ports: ports}
}

// LoadCartridge attaches cart to the bus/PPU and resets the machine so PC
// loads from the new cartridge's reset vector.
func (s *System) LoadCartridge(cart *cartridge.Cartridge) {
	s.Bus.AttachCartridge(cart)
	s.Reset()
}

// Reset resets every owned component to its power-up state.
func (s *System) Reset() {
	s.Bus.Reset()
	s.PPU.Reset()
	s.APU.Reset()
	s.Ports.Reset()
	s.CPU.Reset()
}

// SetTracer attaches a diagnostic sink to the CPU (see internal/trace).
func (s *System) SetTracer(t cpu.Tracer) { s.CPU.SetTracer(t) }

// SetControllerButtons loads a live button snapshot into port 0 or 1.
func (s *System) SetControllerButtons(port int, buttons [8]bool) {
	switch port {
	case 0:
		s.Ports.Controller1.SetButtons(buttons)
	case 1:
		s.Ports.Controller2.SetButtons(buttons)
	}
}

// FrameBuffer returns the borrowed RGBA pixel view the PPU last drew; the
// next RunFrame mutates it in place.
func (s *System) FrameBuffer() []byte { return s.PPU.FrameBuffer() }

// StepInstruction runs one CPU instruction, burns any in-flight OAM-DMA
// stall as CPU-idle PPU-driving ticks, and delivers a pending NMI strictly
// after the instruction (and its DMA stall, if any) complete. It returns
// the total number of CPU cycles consumed, including the stall.
func (s *System) StepInstruction() uint64 {
	cycles := s.CPU.Step()
	s.Bus.AdvanceCPUCycles(cycles)
	s.tickPPU(cycles)

	if stall := s.Bus.TakeDMAStall(); stall > 0 {
		s.Bus.AdvanceCPUCycles(stall)
		s.tickPPU(stall)
		cycles += stall
	}

	if s.Bus.TakeNMI() {
		s.CPU.NMI()
	}
	return cycles
}

func (s *System) tickPPU(cpuCycles uint64) {
	for i := uint64(0); i < cpuCycles*3; i++ {
		s.PPU.Tick()
	}
}

// RunFrame steps instructions until the PPU's Line wraps from 261 back to
// 0, then returns; the caller observes the just-completed frame via
// FrameBuffer.
func (s *System) RunFrame() {
	prevLine := s.PPU.Line
	for {
		s.StepInstruction()
		if prevLine == 261 && s.PPU.Line == 0 {
			return
		}
		prevLine = s.PPU.Line
	}
}
