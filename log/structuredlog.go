package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"
)

// StructuredLog is one line of an emission trace.
type StructuredLog struct {
	Time    time.Time `json:"time"`
	Arch    string    `json:"arch"`
	MsgType string    `json:"msg_type"` // emit, patch, flush
	Addr    uint64    `json:"addr"`
	Word    string    `json:"word,omitempty"`
	Size    uint32    `json:"size,omitempty"`
	End     uint64    `json:"end,omitempty"`
	Asm     *string   `json:"asm,omitempty"`
}

var fieldOrder = []string{"time", "arch", "msg_type", "addr", "word", "size", "end", "asm"}

// Custom JSON marshaling to preserve field order and omit zero/empty values.
func (l StructuredLog) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	writeField := func(key string, val []byte) {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(buf, `"%s":`, key)
		buf.Write(val)
	}
	for _, f := range fieldOrder {
		switch f {
		case "time":
			b, _ := json.Marshal(l.Time)
			writeField(f, b)
		case "arch":
			b, _ := json.Marshal(l.Arch)
			writeField(f, b)
		case "msg_type":
			b, _ := json.Marshal(l.MsgType)
			writeField(f, b)
		case "addr":
			writeField(f, []byte(strconv.Quote(fmt.Sprintf("%#x", l.Addr))))
		case "word":
			if l.Word != "" {
				b, _ := json.Marshal(l.Word)
				writeField(f, b)
			}
		case "size":
			if l.Size != 0 {
				b, _ := json.Marshal(l.Size)
				writeField(f, b)
			}
		case "end":
			if l.End != 0 {
				writeField(f, []byte(strconv.Quote(fmt.Sprintf("%#x", l.End))))
			}
		case "asm":
			if l.Asm != nil {
				b, _ := json.Marshal(*l.Asm)
				writeField(f, b)
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TraceWriter writes StructuredLog lines to an io.Writer.
type TraceWriter struct {
	mu   sync.Mutex
	w    io.Writer
	arch string
	now  func() time.Time
}

func NewTraceWriter(w io.Writer, arch string) *TraceWriter {
	return &TraceWriter{w: w, arch: arch, now: func() time.Time { return time.Now().UTC() }}
}

// Emission writes one trace line; kv may carry "word", "size", "end", "asm" and "time".
func (t *TraceWriter) Emission(msgType string, addr uint64, kv ...interface{}) {
	rec := StructuredLog{
		Time:    t.now(),
		Arch:    t.arch,
		MsgType: msgType,
		Addr:    addr,
	}

	kvMap := toMap(kv...)
	if v, ok := kvMap["word"]; ok {
		switch w := v.(type) {
		case uint32:
			rec.Word = fmt.Sprintf("%08x", w)
		case uint16:
			rec.Word = fmt.Sprintf("%04x", w)
		default:
			rec.Word = fmt.Sprint(v)
		}
	}
	if v, ok := kvMap["size"]; ok {
		rec.Size = parseUint32(v)
	}
	if v, ok := kvMap["end"]; ok {
		if e, ok := v.(uint64); ok {
			rec.End = e
		}
	}
	if v, ok := kvMap["asm"]; ok && v != nil {
		s := fmt.Sprint(v)
		rec.Asm = &s
	}
	if v, ok := kvMap["time"]; ok {
		if ts, ok := v.(time.Time); ok {
			rec.Time = ts
		}
	}

	msgBytes, err := json.Marshal(rec)
	if err != nil {
		Error(JitAsm, "Emission: failed to marshal trace record", "err", err)
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := fmt.Fprintf(t.w, "%s\n", msgBytes); err != nil {
		Error(JitAsm, "Emission: failed to write trace record", "err", err)
	}
}

func toMap(kv ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			m[k] = kv[i+1]
		}
	}
	return m
}

func parseUint32(v interface{}) uint32 {
	switch t := v.(type) {
	case int:
		return uint32(t)
	case int64:
		return uint32(t)
	case float64:
		return uint32(t)
	case uint32:
		return t
	case uint64:
		return uint32(t)
	case string:
		if n, err := strconv.ParseUint(t, 10, 32); err == nil {
			return uint32(n)
		}
	}
	return 0
}
