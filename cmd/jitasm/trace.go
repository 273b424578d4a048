package main

import "github.com/colorfulnotion/jit/log"

// traceAdapter feeds cursor events into a trace writer.
type traceAdapter struct {
	tw *log.TraceWriter
}

func newTraceAdapter(tw *log.TraceWriter) traceAdapter { return traceAdapter{tw: tw} }

func (t traceAdapter) Emitted(addr uintptr, size int, word uint32) {
	t.tw.Emission("emit", uint64(addr), "word", traceWord(size, word), "size", size)
}

func (t traceAdapter) Patched(addr uintptr, size int, word uint32) {
	t.tw.Emission("patch", uint64(addr), "word", traceWord(size, word), "size", size)
}

func (t traceAdapter) Flushed(start, end uintptr) {
	t.tw.Emission("flush", uint64(start), "end", uint64(end))
}

func traceWord(size int, word uint32) interface{} {
	if size == 2 {
		return uint16(word)
	}
	return word
}
