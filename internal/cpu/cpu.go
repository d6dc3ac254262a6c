// Package cpu implements the MOS 6502 interpreter at the core of the NES.
package cpu

// AddressingMode identifies how an opcode's operand address is computed.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

const (
	stackBase = 0x0100

	nFlagMask  = 0x80
	vFlagMask  = 0x40
	unusedMask = 0x20
	bFlagMask  = 0x10
	dFlagMask  = 0x08
	iFlagMask  = 0x04
	zFlagMask  = 0x02
	cFlagMask  = 0x01

	zeroPageMask = 0xFF
	pageMask     = 0xFF00

	nmiVector   = 0xFFFA
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
)

// MemoryInterface is the narrow read/write seam the CPU uses to reach the
// bus. The CPU never holds a reference to anything besides this interface.
type MemoryInterface interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Tracer receives one record per executed instruction when attached. It is
// the extension point internal/trace's sinks implement; nil by default and
// never consulted unless set.
type Tracer interface {
	Trace(rec Record)
}

// Record is a snapshot of CPU state taken immediately before an instruction
// executes, handed to an attached Tracer.
type Record struct {
	PC     uint16
	Opcode uint8
	A, X, Y, SP uint8
	P      uint8
	Cycle  uint64
}

// execFunc is the single signature every opcode body implements. pageCrossed
// is only read by the branch instructions; the conditional extra cycle of the
// load-type opcodes is added by Step from the table's pageCrossBonus flag.
type execFunc func(cpu *CPU, address uint16, pageCrossed bool) uint8

// opcode is one entry of the 256-slot dispatch table: this is the
// table-driven design the CPU uses in place of a per-opcode switch.
type opcode struct {
	name             string
	mode             AddressingMode
	bytes            uint8
	cycles           uint8
	pageCrossBonus   bool // read-type opcode: +1 cycle if the indexed address crossed a page
	exec             execFunc
}

var opcodeTable [256]opcode

// CPU is the 6502 processor driving instruction fetch/decode/execute.
type CPU struct {
	A, X, Y, SP uint8
	PC          uint16

	C, Z, I, D, B, V, N bool

	memory MemoryInterface
	cycles uint64

	irqPending bool

	trace Tracer
}

// New constructs a CPU wired to the given bus. Call Reset before stepping.
func New(memory MemoryInterface) *CPU {
	return &CPU{memory: memory, SP: 0xFD}
}

// SetTracer attaches a diagnostic sink. Pass nil to detach.
func (cpu *CPU) SetTracer(t Tracer) { cpu.trace = t }

// Reset loads PC from the reset vector and re-seeds registers to the
// documented 6502 power-up state.
func (cpu *CPU) Reset() {
	cpu.A, cpu.X, cpu.Y = 0, 0, 0
	cpu.SP = 0xFD
	cpu.C, cpu.Z, cpu.D, cpu.V, cpu.N = false, false, false, false, false
	cpu.I = true
	cpu.B = true

	low := uint16(cpu.memory.Read(resetVector))
	high := uint16(cpu.memory.Read(resetVector + 1))
	cpu.PC = (high << 8) | low
	cpu.cycles += 7
}

// Step fetches, decodes, and executes one instruction, returning the number
// of machine cycles it cost. A held IRQ is serviced at the end of the call,
// once the instruction has completed; its 7 cycles are counted by Cycles()
// but not included in the returned value. NMI is never taken here: the
// caller delivers it between calls.
func (cpu *CPU) Step() uint64 {
	pc := cpu.PC
	op := cpu.memory.Read(pc)
	ins := opcodeTable[op]

	if cpu.trace != nil {
		cpu.trace.Trace(Record{PC: pc, Opcode: op, A: cpu.A, X: cpu.X, Y: cpu.Y, SP: cpu.SP, P: cpu.GetStatusByte(), Cycle: cpu.cycles})
	}

	if ins.exec == nil {
		cpu.PC++
		cpu.cycles += 2
		return 2
	}

	address, pageCrossed := cpu.getOperandAddress(ins.mode)
	extra := ins.exec(cpu, address, pageCrossed)
	if pageCrossed && ins.pageCrossBonus {
		extra++
	}

	total := uint64(ins.cycles) + uint64(extra)
	cpu.cycles += total

	cpu.ProcessPendingInterrupts()
	return total
}

func (cpu *CPU) getOperandAddress(mode AddressingMode) (uint16, bool) {
	switch mode {
	case Implied, Accumulator:
		cpu.PC++
		return 0, false

	case Immediate:
		address := cpu.PC + 1
		cpu.PC += 2
		return address, false

	case ZeroPage:
		address := uint16(cpu.memory.Read(cpu.PC + 1))
		cpu.PC += 2
		return address, false

	case ZeroPageX:
		base := cpu.memory.Read(cpu.PC + 1)
		address := uint16((base + cpu.X) & zeroPageMask)
		cpu.PC += 2
		return address, false

	case ZeroPageY:
		base := cpu.memory.Read(cpu.PC + 1)
		address := uint16((base + cpu.Y) & zeroPageMask)
		cpu.PC += 2
		return address, false

	case Relative:
		offset := int8(cpu.memory.Read(cpu.PC + 1))
		oldPC := cpu.PC + 2
		newPC := uint16(int32(oldPC) + int32(offset))
		cpu.PC = oldPC
		return newPC, (oldPC & pageMask) != (newPC & pageMask)

	case Absolute:
		low := uint16(cpu.memory.Read(cpu.PC + 1))
		high := uint16(cpu.memory.Read(cpu.PC + 2))
		cpu.PC += 3
		return (high << 8) | low, false

	case AbsoluteX:
		low := uint16(cpu.memory.Read(cpu.PC + 1))
		high := uint16(cpu.memory.Read(cpu.PC + 2))
		base := (high << 8) | low
		address := base + uint16(cpu.X)
		cpu.PC += 3
		return address, (base & pageMask) != (address & pageMask)

	case AbsoluteY:
		low := uint16(cpu.memory.Read(cpu.PC + 1))
		high := uint16(cpu.memory.Read(cpu.PC + 2))
		base := (high << 8) | low
		address := base + uint16(cpu.Y)
		cpu.PC += 3
		return address, (base & pageMask) != (address & pageMask)

	case Indirect: // JMP only; reproduces the page-wrap hardware bug.
		lowPtr := uint16(cpu.memory.Read(cpu.PC + 1))
		highPtr := uint16(cpu.memory.Read(cpu.PC + 2))
		ptr := (highPtr << 8) | lowPtr

		var address uint16
		if ptr&zeroPageMask == zeroPageMask {
			low := uint16(cpu.memory.Read(ptr))
			high := uint16(cpu.memory.Read(ptr & pageMask))
			address = (high << 8) | low
		} else {
			low := uint16(cpu.memory.Read(ptr))
			high := uint16(cpu.memory.Read(ptr + 1))
			address = (high << 8) | low
		}
		cpu.PC += 3
		return address, false

	case IndexedIndirect:
		base := cpu.memory.Read(cpu.PC + 1)
		ptr := (base + cpu.X) & zeroPageMask
		low := uint16(cpu.memory.Read(uint16(ptr)))
		high := uint16(cpu.memory.Read(uint16((ptr + 1) & zeroPageMask)))
		cpu.PC += 2
		return (high << 8) | low, false

	case IndirectIndexed:
		ptr := uint16(cpu.memory.Read(cpu.PC + 1))
		low := uint16(cpu.memory.Read(ptr))
		high := uint16(cpu.memory.Read((ptr + 1) & zeroPageMask))
		base := (high << 8) | low
		address := base + uint16(cpu.Y)
		cpu.PC += 2
		return address, (base & pageMask) != (address & pageMask)

	default:
		return 0, false
	}
}

func (cpu *CPU) push(value uint8) {
	cpu.memory.Write(stackBase+uint16(cpu.SP), value)
	cpu.SP--
}

func (cpu *CPU) pop() uint8 {
	cpu.SP++
	return cpu.memory.Read(stackBase + uint16(cpu.SP))
}

func (cpu *CPU) pushWord(value uint16) {
	cpu.push(uint8(value >> 8))
	cpu.push(uint8(value & 0xFF))
}

func (cpu *CPU) popWord() uint16 {
	low := uint16(cpu.pop())
	high := uint16(cpu.pop())
	return (high << 8) | low
}

func (cpu *CPU) setZN(value uint8) {
	cpu.Z = value == 0
	cpu.N = value&nFlagMask != 0
}

// GetStatusByte packs the flags into the 8-bit status register. Bit 5 always
// reads set; bit 4 (B) reflects the live flag, not the pushed-copy override
// PHP/BRK apply on push.
func (cpu *CPU) GetStatusByte() uint8 {
	var status uint8
	if cpu.N {
		status |= nFlagMask
	}
	if cpu.V {
		status |= vFlagMask
	}
	status |= unusedMask
	if cpu.B {
		status |= bFlagMask
	}
	if cpu.D {
		status |= dFlagMask
	}
	if cpu.I {
		status |= iFlagMask
	}
	if cpu.Z {
		status |= zFlagMask
	}
	if cpu.C {
		status |= cFlagMask
	}
	return status
}

// SetStatusByte restores flags from a byte, as PLP/RTI do. Bit 4 is copied
// into B as given; plp and rti in opcodes.go clear B after calling this to
// apply the "B clear" pulled-copy convention.
func (cpu *CPU) SetStatusByte(status uint8) {
	cpu.N = status&nFlagMask != 0
	cpu.V = status&vFlagMask != 0
	cpu.B = status&bFlagMask != 0
	cpu.D = status&dFlagMask != 0
	cpu.I = status&iFlagMask != 0
	cpu.Z = status&zFlagMask != 0
	cpu.C = status&cFlagMask != 0
}

// NMI services a non-maskable interrupt. It is never gated by the I flag —
// callers (the system scheduler) decide when to raise it based purely on
// PPUCTRL bit 7, per the corrected semantics this repository implements.
func (cpu *CPU) NMI() {
	cpu.pushWord(cpu.PC)
	cpu.push((cpu.GetStatusByte() &^ bFlagMask) | unusedMask)
	cpu.I = true
	low := uint16(cpu.memory.Read(nmiVector))
	high := uint16(cpu.memory.Read(nmiVector + 1))
	cpu.PC = (high << 8) | low
	cpu.cycles += 7
}

func (cpu *CPU) handleIRQ() {
	cpu.pushWord(cpu.PC)
	cpu.push((cpu.GetStatusByte() &^ bFlagMask) | unusedMask)
	cpu.I = true
	low := uint16(cpu.memory.Read(irqVector))
	high := uint16(cpu.memory.Read(irqVector + 1))
	cpu.PC = (high << 8) | low
	cpu.cycles += 7
}

// SetIRQ sets the level-triggered IRQ line.
func (cpu *CPU) SetIRQ(state bool) { cpu.irqPending = state }

// ProcessPendingInterrupts services a held IRQ (only while I is clear).
// NMI delivery does not go through this path: it's edge-triggered and
// delivered directly by the system scheduler via NMI(), not latched here.
// Step calls this once at the end of every instruction.
func (cpu *CPU) ProcessPendingInterrupts() {
	if cpu.irqPending && !cpu.I {
		cpu.handleIRQ()
	}
}

// Cycles returns the running total of machine cycles consumed since New.
func (cpu *CPU) Cycles() uint64 { return cpu.cycles }
