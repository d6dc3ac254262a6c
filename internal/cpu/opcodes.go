package cpu

// Load/store.

func lda(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.A = cpu.memory.Read(address)
	cpu.setZN(cpu.A)
	return 0
}

func ldx(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.X = cpu.memory.Read(address)
	cpu.setZN(cpu.X)
	return 0
}

func ldy(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.Y = cpu.memory.Read(address)
	cpu.setZN(cpu.Y)
	return 0
}

func sta(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.memory.Write(address, cpu.A)
	return 0
}

func stx(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.memory.Write(address, cpu.X)
	return 0
}

func sty(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.memory.Write(address, cpu.Y)
	return 0
}

// Arithmetic.

func adc(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	addWithCarry(cpu, value)
	return 0
}

func sbc(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address) ^ 0xFF
	addWithCarry(cpu, value)
	return 0
}

func addWithCarry(cpu *CPU, value uint8) {
	carry := uint16(0)
	if cpu.C {
		carry = 1
	}
	result := uint16(cpu.A) + uint16(value) + carry
	cpu.V = (cpu.A^uint8(result))&0x80 != 0 && (cpu.A^value)&0x80 == 0
	cpu.C = result > 0xFF
	cpu.A = uint8(result)
	cpu.setZN(cpu.A)
}

// Logical.

func and(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.A &= cpu.memory.Read(address)
	cpu.setZN(cpu.A)
	return 0
}

func ora(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.A |= cpu.memory.Read(address)
	cpu.setZN(cpu.A)
	return 0
}

func eor(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.A ^= cpu.memory.Read(address)
	cpu.setZN(cpu.A)
	return 0
}

// Shift/rotate, memory operand.

func asl(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	cpu.C = value&0x80 != 0
	value <<= 1
	cpu.memory.Write(address, value)
	cpu.setZN(value)
	return 0
}

func lsr(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	cpu.C = value&0x01 != 0
	value >>= 1
	cpu.memory.Write(address, value)
	cpu.setZN(value)
	return 0
}

func rol(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	oldCarry := cpu.C
	cpu.C = value&0x80 != 0
	value <<= 1
	if oldCarry {
		value |= 0x01
	}
	cpu.memory.Write(address, value)
	cpu.setZN(value)
	return 0
}

func ror(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	oldCarry := cpu.C
	cpu.C = value&0x01 != 0
	value >>= 1
	if oldCarry {
		value |= 0x80
	}
	cpu.memory.Write(address, value)
	cpu.setZN(value)
	return 0
}

// Shift/rotate, accumulator operand.

func aslAcc(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.C = cpu.A&0x80 != 0
	cpu.A <<= 1
	cpu.setZN(cpu.A)
	return 0
}

func lsrAcc(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.C = cpu.A&0x01 != 0
	cpu.A >>= 1
	cpu.setZN(cpu.A)
	return 0
}

func rolAcc(cpu *CPU, _ uint16, _ bool) uint8 {
	oldCarry := cpu.C
	cpu.C = cpu.A&0x80 != 0
	cpu.A <<= 1
	if oldCarry {
		cpu.A |= 0x01
	}
	cpu.setZN(cpu.A)
	return 0
}

func rorAcc(cpu *CPU, _ uint16, _ bool) uint8 {
	oldCarry := cpu.C
	cpu.C = cpu.A&0x01 != 0
	cpu.A >>= 1
	if oldCarry {
		cpu.A |= 0x80
	}
	cpu.setZN(cpu.A)
	return 0
}

// Compare.

func cmp(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	cpu.C = cpu.A >= value
	cpu.setZN(cpu.A - value)
	return 0
}

func cpx(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	cpu.C = cpu.X >= value
	cpu.setZN(cpu.X - value)
	return 0
}

func cpy(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	cpu.C = cpu.Y >= value
	cpu.setZN(cpu.Y - value)
	return 0
}

// Increment/decrement.

func inc(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address) + 1
	cpu.memory.Write(address, value)
	cpu.setZN(value)
	return 0
}

func dec(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address) - 1
	cpu.memory.Write(address, value)
	cpu.setZN(value)
	return 0
}

func inx(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.X++
	cpu.setZN(cpu.X)
	return 0
}

func dex(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.X--
	cpu.setZN(cpu.X)
	return 0
}

func iny(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.Y++
	cpu.setZN(cpu.Y)
	return 0
}

func dey(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.Y--
	cpu.setZN(cpu.Y)
	return 0
}

// Transfers.

func tax(cpu *CPU, _ uint16, _ bool) uint8 { cpu.X = cpu.A; cpu.setZN(cpu.X); return 0 }
func txa(cpu *CPU, _ uint16, _ bool) uint8 { cpu.A = cpu.X; cpu.setZN(cpu.A); return 0 }
func tay(cpu *CPU, _ uint16, _ bool) uint8 { cpu.Y = cpu.A; cpu.setZN(cpu.Y); return 0 }
func tya(cpu *CPU, _ uint16, _ bool) uint8 { cpu.A = cpu.Y; cpu.setZN(cpu.A); return 0 }
func tsx(cpu *CPU, _ uint16, _ bool) uint8 { cpu.X = cpu.SP; cpu.setZN(cpu.X); return 0 }
func txs(cpu *CPU, _ uint16, _ bool) uint8 { cpu.SP = cpu.X; return 0 }

// Stack.

func pha(cpu *CPU, _ uint16, _ bool) uint8 { cpu.push(cpu.A); return 0 }

func pla(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.A = cpu.pop()
	cpu.setZN(cpu.A)
	return 0
}

func php(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.push(cpu.GetStatusByte() | bFlagMask | unusedMask)
	return 0
}

func plp(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.SetStatusByte(cpu.pop())
	cpu.B = false
	return 0
}

// Flags.

func clc(cpu *CPU, _ uint16, _ bool) uint8 { cpu.C = false; return 0 }
func sec(cpu *CPU, _ uint16, _ bool) uint8 { cpu.C = true; return 0 }
func cli(cpu *CPU, _ uint16, _ bool) uint8 { cpu.I = false; return 0 }
func sei(cpu *CPU, _ uint16, _ bool) uint8 { cpu.I = true; return 0 }
func clv(cpu *CPU, _ uint16, _ bool) uint8 { cpu.V = false; return 0 }
func cld(cpu *CPU, _ uint16, _ bool) uint8 { cpu.D = false; return 0 }
func sed(cpu *CPU, _ uint16, _ bool) uint8 { cpu.D = true; return 0 }

// Control flow.

func jmp(cpu *CPU, address uint16, _ bool) uint8 { cpu.PC = address; return 0 }

func jsr(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.pushWord(cpu.PC - 1)
	cpu.PC = address
	return 0
}

func rts(cpu *CPU, _ uint16, _ bool) uint8 { cpu.PC = cpu.popWord() + 1; return 0 }

func rti(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.SetStatusByte(cpu.pop())
	cpu.B = false
	cpu.PC = cpu.popWord()
	return 0
}

// Branches: all share the taken/page-cross cycle accounting.

func branchIf(cpu *CPU, address uint16, pageCrossed, taken bool) uint8 {
	if !taken {
		return 0
	}
	cpu.PC = address
	if pageCrossed {
		return 2
	}
	return 1
}

func bcc(cpu *CPU, a uint16, pc bool) uint8 { return branchIf(cpu, a, pc, !cpu.C) }
func bcs(cpu *CPU, a uint16, pc bool) uint8 { return branchIf(cpu, a, pc, cpu.C) }
func bne(cpu *CPU, a uint16, pc bool) uint8 { return branchIf(cpu, a, pc, !cpu.Z) }
func beq(cpu *CPU, a uint16, pc bool) uint8 { return branchIf(cpu, a, pc, cpu.Z) }
func bpl(cpu *CPU, a uint16, pc bool) uint8 { return branchIf(cpu, a, pc, !cpu.N) }
func bmi(cpu *CPU, a uint16, pc bool) uint8 { return branchIf(cpu, a, pc, cpu.N) }
func bvc(cpu *CPU, a uint16, pc bool) uint8 { return branchIf(cpu, a, pc, !cpu.V) }
func bvs(cpu *CPU, a uint16, pc bool) uint8 { return branchIf(cpu, a, pc, cpu.V) }

// Miscellaneous.

func bitOp(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	cpu.N = value&nFlagMask != 0
	cpu.V = value&vFlagMask != 0
	cpu.Z = cpu.A&value == 0
	return 0
}

func nop(cpu *CPU, _ uint16, _ bool) uint8 { return 0 }

func brk(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.PC++ // skip the signature/padding byte
	cpu.pushWord(cpu.PC)
	cpu.push(cpu.GetStatusByte() | bFlagMask | unusedMask)
	cpu.I = true
	low := uint16(cpu.memory.Read(irqVector))
	high := uint16(cpu.memory.Read(irqVector + 1))
	cpu.PC = (high << 8) | low
	return 0
}

// Undocumented opcodes.

func lax(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.A = cpu.memory.Read(address)
	cpu.X = cpu.A
	cpu.setZN(cpu.A)
	return 0
}

func sax(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.memory.Write(address, cpu.A&cpu.X)
	return 0
}

func dcp(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address) - 1
	cpu.memory.Write(address, value)
	cpu.C = cpu.A >= value
	cpu.setZN(cpu.A - value)
	return 0
}

func isb(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address) + 1
	cpu.memory.Write(address, value)
	addWithCarry(cpu, value^0xFF)
	return 0
}

func slo(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	cpu.C = value&0x80 != 0
	value <<= 1
	cpu.memory.Write(address, value)
	cpu.A |= value
	cpu.setZN(cpu.A)
	return 0
}

func rla(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	oldCarry := cpu.C
	cpu.C = value&0x80 != 0
	value <<= 1
	if oldCarry {
		value |= 0x01
	}
	cpu.memory.Write(address, value)
	cpu.A &= value
	cpu.setZN(cpu.A)
	return 0
}

func sre(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	cpu.C = value&0x01 != 0
	value >>= 1
	cpu.memory.Write(address, value)
	cpu.A ^= value
	cpu.setZN(cpu.A)
	return 0
}

func rra(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.memory.Read(address)
	oldCarry := cpu.C
	cpu.C = value&0x01 != 0
	value >>= 1
	if oldCarry {
		value |= 0x80
	}
	cpu.memory.Write(address, value)
	addWithCarry(cpu, value)
	return 0
}

// op is a terse literal builder used only while populating opcodeTable.
func op(name string, mode AddressingMode, bytes, cycles uint8, pageCross bool, fn execFunc) opcode {
	return opcode{name: name, mode: mode, bytes: bytes, cycles: cycles, pageCrossBonus: pageCross, exec: fn}
}

func init() {
	t := &opcodeTable

	// Load/store.
	t[0xA9] = op("LDA", Immediate, 2, 2, false, lda)
	t[0xA5] = op("LDA", ZeroPage, 2, 3, false, lda)
	t[0xB5] = op("LDA", ZeroPageX, 2, 4, false, lda)
	t[0xAD] = op("LDA", Absolute, 3, 4, false, lda)
	t[0xBD] = op("LDA", AbsoluteX, 3, 4, true, lda)
	t[0xB9] = op("LDA", AbsoluteY, 3, 4, true, lda)
	t[0xA1] = op("LDA", IndexedIndirect, 2, 6, false, lda)
	t[0xB1] = op("LDA", IndirectIndexed, 2, 5, true, lda)

	t[0xA2] = op("LDX", Immediate, 2, 2, false, ldx)
	t[0xA6] = op("LDX", ZeroPage, 2, 3, false, ldx)
	t[0xB6] = op("LDX", ZeroPageY, 2, 4, false, ldx)
	t[0xAE] = op("LDX", Absolute, 3, 4, false, ldx)
	t[0xBE] = op("LDX", AbsoluteY, 3, 4, true, ldx)

	t[0xA0] = op("LDY", Immediate, 2, 2, false, ldy)
	t[0xA4] = op("LDY", ZeroPage, 2, 3, false, ldy)
	t[0xB4] = op("LDY", ZeroPageX, 2, 4, false, ldy)
	t[0xAC] = op("LDY", Absolute, 3, 4, false, ldy)
	t[0xBC] = op("LDY", AbsoluteX, 3, 4, true, ldy)

	t[0x85] = op("STA", ZeroPage, 2, 3, false, sta)
	t[0x95] = op("STA", ZeroPageX, 2, 4, false, sta)
	t[0x8D] = op("STA", Absolute, 3, 4, false, sta)
	t[0x9D] = op("STA", AbsoluteX, 3, 5, false, sta) // no discount: always pays indexed cost
	t[0x99] = op("STA", AbsoluteY, 3, 5, false, sta)
	t[0x81] = op("STA", IndexedIndirect, 2, 6, false, sta)
	t[0x91] = op("STA", IndirectIndexed, 2, 6, false, sta)

	t[0x86] = op("STX", ZeroPage, 2, 3, false, stx)
	t[0x96] = op("STX", ZeroPageY, 2, 4, false, stx)
	t[0x8E] = op("STX", Absolute, 3, 4, false, stx)

	t[0x84] = op("STY", ZeroPage, 2, 3, false, sty)
	t[0x94] = op("STY", ZeroPageX, 2, 4, false, sty)
	t[0x8C] = op("STY", Absolute, 3, 4, false, sty)

	// Arithmetic.
	t[0x69] = op("ADC", Immediate, 2, 2, false, adc)
	t[0x65] = op("ADC", ZeroPage, 2, 3, false, adc)
	t[0x75] = op("ADC", ZeroPageX, 2, 4, false, adc)
	t[0x6D] = op("ADC", Absolute, 3, 4, false, adc)
	t[0x7D] = op("ADC", AbsoluteX, 3, 4, true, adc)
	t[0x79] = op("ADC", AbsoluteY, 3, 4, true, adc)
	t[0x61] = op("ADC", IndexedIndirect, 2, 6, false, adc)
	t[0x71] = op("ADC", IndirectIndexed, 2, 5, true, adc)

	t[0xE9] = op("SBC", Immediate, 2, 2, false, sbc)
	t[0xEB] = op("SBC", Immediate, 2, 2, false, sbc) // unofficial alias
	t[0xE5] = op("SBC", ZeroPage, 2, 3, false, sbc)
	t[0xF5] = op("SBC", ZeroPageX, 2, 4, false, sbc)
	t[0xED] = op("SBC", Absolute, 3, 4, false, sbc)
	t[0xFD] = op("SBC", AbsoluteX, 3, 4, true, sbc)
	t[0xF9] = op("SBC", AbsoluteY, 3, 4, true, sbc)
	t[0xE1] = op("SBC", IndexedIndirect, 2, 6, false, sbc)
	t[0xF1] = op("SBC", IndirectIndexed, 2, 5, true, sbc)

	// Logical.
	t[0x29] = op("AND", Immediate, 2, 2, false, and)
	t[0x25] = op("AND", ZeroPage, 2, 3, false, and)
	t[0x35] = op("AND", ZeroPageX, 2, 4, false, and)
	t[0x2D] = op("AND", Absolute, 3, 4, false, and)
	t[0x3D] = op("AND", AbsoluteX, 3, 4, true, and)
	t[0x39] = op("AND", AbsoluteY, 3, 4, true, and)
	t[0x21] = op("AND", IndexedIndirect, 2, 6, false, and)
	t[0x31] = op("AND", IndirectIndexed, 2, 5, true, and)

	t[0x09] = op("ORA", Immediate, 2, 2, false, ora)
	t[0x05] = op("ORA", ZeroPage, 2, 3, false, ora)
	t[0x15] = op("ORA", ZeroPageX, 2, 4, false, ora)
	t[0x0D] = op("ORA", Absolute, 3, 4, false, ora)
	t[0x1D] = op("ORA", AbsoluteX, 3, 4, true, ora)
	t[0x19] = op("ORA", AbsoluteY, 3, 4, true, ora)
	t[0x01] = op("ORA", IndexedIndirect, 2, 6, false, ora)
	t[0x11] = op("ORA", IndirectIndexed, 2, 5, true, ora)

	t[0x49] = op("EOR", Immediate, 2, 2, false, eor)
	t[0x45] = op("EOR", ZeroPage, 2, 3, false, eor)
	t[0x55] = op("EOR", ZeroPageX, 2, 4, false, eor)
	t[0x4D] = op("EOR", Absolute, 3, 4, false, eor)
	t[0x5D] = op("EOR", AbsoluteX, 3, 4, true, eor)
	t[0x59] = op("EOR", AbsoluteY, 3, 4, true, eor)
	t[0x41] = op("EOR", IndexedIndirect, 2, 6, false, eor)
	t[0x51] = op("EOR", IndirectIndexed, 2, 5, true, eor)

	// Shift/rotate.
	t[0x0A] = op("ASL", Accumulator, 1, 2, false, aslAcc)
	t[0x06] = op("ASL", ZeroPage, 2, 5, false, asl)
	t[0x16] = op("ASL", ZeroPageX, 2, 6, false, asl)
	t[0x0E] = op("ASL", Absolute, 3, 6, false, asl)
	t[0x1E] = op("ASL", AbsoluteX, 3, 7, false, asl)

	t[0x4A] = op("LSR", Accumulator, 1, 2, false, lsrAcc)
	t[0x46] = op("LSR", ZeroPage, 2, 5, false, lsr)
	t[0x56] = op("LSR", ZeroPageX, 2, 6, false, lsr)
	t[0x4E] = op("LSR", Absolute, 3, 6, false, lsr)
	t[0x5E] = op("LSR", AbsoluteX, 3, 7, false, lsr)

	t[0x2A] = op("ROL", Accumulator, 1, 2, false, rolAcc)
	t[0x26] = op("ROL", ZeroPage, 2, 5, false, rol)
	t[0x36] = op("ROL", ZeroPageX, 2, 6, false, rol)
	t[0x2E] = op("ROL", Absolute, 3, 6, false, rol)
	t[0x3E] = op("ROL", AbsoluteX, 3, 7, false, rol)

	t[0x6A] = op("ROR", Accumulator, 1, 2, false, rorAcc)
	t[0x66] = op("ROR", ZeroPage, 2, 5, false, ror)
	t[0x76] = op("ROR", ZeroPageX, 2, 6, false, ror)
	t[0x6E] = op("ROR", Absolute, 3, 6, false, ror)
	t[0x7E] = op("ROR", AbsoluteX, 3, 7, false, ror)

	// Compare.
	t[0xC9] = op("CMP", Immediate, 2, 2, false, cmp)
	t[0xC5] = op("CMP", ZeroPage, 2, 3, false, cmp)
	t[0xD5] = op("CMP", ZeroPageX, 2, 4, false, cmp)
	t[0xCD] = op("CMP", Absolute, 3, 4, false, cmp)
	t[0xDD] = op("CMP", AbsoluteX, 3, 4, true, cmp)
	t[0xD9] = op("CMP", AbsoluteY, 3, 4, true, cmp)
	t[0xC1] = op("CMP", IndexedIndirect, 2, 6, false, cmp)
	t[0xD1] = op("CMP", IndirectIndexed, 2, 5, true, cmp)

	t[0xE0] = op("CPX", Immediate, 2, 2, false, cpx)
	t[0xE4] = op("CPX", ZeroPage, 2, 3, false, cpx)
	t[0xEC] = op("CPX", Absolute, 3, 4, false, cpx)

	t[0xC0] = op("CPY", Immediate, 2, 2, false, cpy)
	t[0xC4] = op("CPY", ZeroPage, 2, 3, false, cpy)
	t[0xCC] = op("CPY", Absolute, 3, 4, false, cpy)

	// Increment/decrement.
	t[0xE6] = op("INC", ZeroPage, 2, 5, false, inc)
	t[0xF6] = op("INC", ZeroPageX, 2, 6, false, inc)
	t[0xEE] = op("INC", Absolute, 3, 6, false, inc)
	t[0xFE] = op("INC", AbsoluteX, 3, 7, false, inc)

	t[0xC6] = op("DEC", ZeroPage, 2, 5, false, dec)
	t[0xD6] = op("DEC", ZeroPageX, 2, 6, false, dec)
	t[0xCE] = op("DEC", Absolute, 3, 6, false, dec)
	t[0xDE] = op("DEC", AbsoluteX, 3, 7, false, dec)

	t[0xE8] = op("INX", Implied, 1, 2, false, inx)
	t[0xCA] = op("DEX", Implied, 1, 2, false, dex)
	t[0xC8] = op("INY", Implied, 1, 2, false, iny)
	t[0x88] = op("DEY", Implied, 1, 2, false, dey)

	// Transfers.
	t[0xAA] = op("TAX", Implied, 1, 2, false, tax)
	t[0x8A] = op("TXA", Implied, 1, 2, false, txa)
	t[0xA8] = op("TAY", Implied, 1, 2, false, tay)
	t[0x98] = op("TYA", Implied, 1, 2, false, tya)
	t[0xBA] = op("TSX", Implied, 1, 2, false, tsx)
	t[0x9A] = op("TXS", Implied, 1, 2, false, txs)

	// Stack.
	t[0x48] = op("PHA", Implied, 1, 3, false, pha)
	t[0x68] = op("PLA", Implied, 1, 4, false, pla)
	t[0x08] = op("PHP", Implied, 1, 3, false, php)
	t[0x28] = op("PLP", Implied, 1, 4, false, plp)

	// Flags.
	t[0x18] = op("CLC", Implied, 1, 2, false, clc)
	t[0x38] = op("SEC", Implied, 1, 2, false, sec)
	t[0x58] = op("CLI", Implied, 1, 2, false, cli)
	t[0x78] = op("SEI", Implied, 1, 2, false, sei)
	t[0xB8] = op("CLV", Implied, 1, 2, false, clv)
	t[0xD8] = op("CLD", Implied, 1, 2, false, cld)
	t[0xF8] = op("SED", Implied, 1, 2, false, sed)

	// Control flow.
	t[0x4C] = op("JMP", Absolute, 3, 3, false, jmp)
	t[0x6C] = op("JMP", Indirect, 3, 5, false, jmp)
	t[0x20] = op("JSR", Absolute, 3, 6, false, jsr)
	t[0x60] = op("RTS", Implied, 1, 6, false, rts)
	t[0x40] = op("RTI", Implied, 1, 6, false, rti)

	// Branches.
	t[0x90] = op("BCC", Relative, 2, 2, false, bcc)
	t[0xB0] = op("BCS", Relative, 2, 2, false, bcs)
	t[0xD0] = op("BNE", Relative, 2, 2, false, bne)
	t[0xF0] = op("BEQ", Relative, 2, 2, false, beq)
	t[0x10] = op("BPL", Relative, 2, 2, false, bpl)
	t[0x30] = op("BMI", Relative, 2, 2, false, bmi)
	t[0x50] = op("BVC", Relative, 2, 2, false, bvc)
	t[0x70] = op("BVS", Relative, 2, 2, false, bvs)

	// Miscellaneous.
	t[0x24] = op("BIT", ZeroPage, 2, 3, false, bitOp)
	t[0x2C] = op("BIT", Absolute, 3, 4, false, bitOp)
	t[0xEA] = op("NOP", Implied, 1, 2, false, nop)
	t[0x00] = op("BRK", Implied, 1, 7, false, brk)

	// Unofficial NOPs.
	for _, o := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		t[o] = op("NOP", Implied, 1, 2, false, nop)
	}
	for _, o := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		t[o] = op("NOP", Immediate, 2, 2, false, nop)
	}
	for _, o := range []uint8{0x04, 0x44, 0x64} {
		t[o] = op("NOP", ZeroPage, 2, 3, false, nop)
	}
	for _, o := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		t[o] = op("NOP", ZeroPageX, 2, 4, false, nop)
	}
	t[0x0C] = op("NOP", Absolute, 3, 4, false, nop)
	for _, o := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		t[o] = op("NOP", AbsoluteX, 3, 4, true, nop)
	}

	// Unofficial opcodes.
	t[0xA7] = op("LAX", ZeroPage, 2, 3, false, lax)
	t[0xB7] = op("LAX", ZeroPageY, 2, 4, false, lax)
	t[0xAF] = op("LAX", Absolute, 3, 4, false, lax)
	t[0xBF] = op("LAX", AbsoluteY, 3, 4, true, lax)
	t[0xA3] = op("LAX", IndexedIndirect, 2, 6, false, lax)
	t[0xB3] = op("LAX", IndirectIndexed, 2, 5, true, lax)

	t[0x87] = op("SAX", ZeroPage, 2, 3, false, sax)
	t[0x97] = op("SAX", ZeroPageY, 2, 4, false, sax)
	t[0x8F] = op("SAX", Absolute, 3, 4, false, sax)
	t[0x83] = op("SAX", IndexedIndirect, 2, 6, false, sax)

	t[0xC7] = op("DCP", ZeroPage, 2, 5, false, dcp)
	t[0xD7] = op("DCP", ZeroPageX, 2, 6, false, dcp)
	t[0xCF] = op("DCP", Absolute, 3, 6, false, dcp)
	t[0xDF] = op("DCP", AbsoluteX, 3, 7, false, dcp)
	t[0xDB] = op("DCP", AbsoluteY, 3, 7, false, dcp)
	t[0xC3] = op("DCP", IndexedIndirect, 2, 8, false, dcp)
	t[0xD3] = op("DCP", IndirectIndexed, 2, 8, false, dcp)

	t[0xE7] = op("ISB", ZeroPage, 2, 5, false, isb)
	t[0xF7] = op("ISB", ZeroPageX, 2, 6, false, isb)
	t[0xEF] = op("ISB", Absolute, 3, 6, false, isb)
	t[0xFF] = op("ISB", AbsoluteX, 3, 7, false, isb)
	t[0xFB] = op("ISB", AbsoluteY, 3, 7, false, isb)
	t[0xE3] = op("ISB", IndexedIndirect, 2, 8, false, isb)
	t[0xF3] = op("ISB", IndirectIndexed, 2, 8, false, isb)

	t[0x07] = op("SLO", ZeroPage, 2, 5, false, slo)
	t[0x17] = op("SLO", ZeroPageX, 2, 6, false, slo)
	t[0x0F] = op("SLO", Absolute, 3, 6, false, slo)
	t[0x1F] = op("SLO", AbsoluteX, 3, 7, false, slo)
	t[0x1B] = op("SLO", AbsoluteY, 3, 7, false, slo)
	t[0x03] = op("SLO", IndexedIndirect, 2, 8, false, slo)
	t[0x13] = op("SLO", IndirectIndexed, 2, 8, false, slo)

	t[0x27] = op("RLA", ZeroPage, 2, 5, false, rla)
	t[0x37] = op("RLA", ZeroPageX, 2, 6, false, rla)
	t[0x2F] = op("RLA", Absolute, 3, 6, false, rla)
	t[0x3F] = op("RLA", AbsoluteX, 3, 7, false, rla)
	t[0x3B] = op("RLA", AbsoluteY, 3, 7, false, rla)
	t[0x23] = op("RLA", IndexedIndirect, 2, 8, false, rla)
	t[0x33] = op("RLA", IndirectIndexed, 2, 8, false, rla)

	t[0x47] = op("SRE", ZeroPage, 2, 5, false, sre)
	t[0x57] = op("SRE", ZeroPageX, 2, 6, false, sre)
	t[0x4F] = op("SRE", Absolute, 3, 6, false, sre)
	t[0x5F] = op("SRE", AbsoluteX, 3, 7, false, sre)
	t[0x5B] = op("SRE", AbsoluteY, 3, 7, false, sre)
	t[0x43] = op("SRE", IndexedIndirect, 2, 8, false, sre)
	t[0x53] = op("SRE", IndirectIndexed, 2, 8, false, sre)

	t[0x67] = op("RRA", ZeroPage, 2, 5, false, rra)
	t[0x77] = op("RRA", ZeroPageX, 2, 6, false, rra)
	t[0x6F] = op("RRA", Absolute, 3, 6, false, rra)
	t[0x7F] = op("RRA", AbsoluteX, 3, 7, false, rra)
	t[0x7B] = op("RRA", AbsoluteY, 3, 7, false, rra)
	t[0x63] = op("RRA", IndexedIndirect, 2, 8, false, rra)
	t[0x73] = op("RRA", IndirectIndexed, 2, 8, false, rra)
}
