// Package trace implements the diagnostic sinks cpu.CPU's Tracer extension
// point calls through when attached: a one-line-per-instruction text format
// carrying nestest.log's register fields, and a go-spew dump of each record.
package trace

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"gones/internal/cpu"
)

// TextSink renders one line per cpu.Record: PC, opcode byte, and the
// A:/X:/Y:/P:/SP:/CYC: fields of a nestest.log line. The operand bytes,
// disassembly and PPU columns of a real nestest.log line are not written.
type TextSink struct {
	w io.Writer
}

// NewTextSink returns a TextSink writing to w.
func NewTextSink(w io.Writer) *TextSink { return &TextSink{w: w} }

// Trace implements cpu.Tracer.
func (s *TextSink) Trace(rec cpu.Record) {
	fmt.Fprintf(s.w, "%04X  %02X  A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d\n",
		rec.PC, rec.Opcode, rec.A, rec.X, rec.Y, rec.P, rec.SP, rec.Cycle)
}

// SpewSink dumps the full record via go-spew to its writer; cmd/nesgo
// attaches it for the "spew" trace level.
type SpewSink struct {
	w      io.Writer
	config spew.ConfigState
}

// NewSpewSink returns a SpewSink writing to w.
func NewSpewSink(w io.Writer) *SpewSink {
	return &SpewSink{
		w:      w,
		config: spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true},
	}
}

// Trace implements cpu.Tracer.
func (s *SpewSink) Trace(rec cpu.Record) {
	s.config.Fdump(s.w, rec)
}

// MultiSink fans one record out to several sinks, in order.
type MultiSink []cpu.Tracer

// Trace implements cpu.Tracer.
func (m MultiSink) Trace(rec cpu.Record) {
	for _, sink := range m {
		sink.Trace(rec)
	}
}
