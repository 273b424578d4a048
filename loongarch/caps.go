package loongarch

import (
	"fmt"
	"strings"
)

// Capabilities mirrors the CPUCFG feature bits the emitter gates on. It is
// fixed for the lifetime of an Emitter.
type Capabilities struct {
	FPU     bool
	LSX     bool
	LASX    bool
	LAM     bool
	UAL     bool
	CRC32   bool
	Complex bool
	Crypto  bool
	LVZ     bool
	LBTX86  bool
	LBTARM  bool
	LBTMIPS bool
}

// LA464 is a 3A5000/3A6000 class core.
func LA464() Capabilities {
	return Capabilities{
		FPU: true, LSX: true, LASX: true, LAM: true, UAL: true, CRC32: true,
		Complex: true, Crypto: true, LVZ: true, LBTX86: true, LBTARM: true, LBTMIPS: true,
	}
}

type extFlag struct {
	name string
	get  func(*Capabilities) *bool
}

var extensions = []extFlag{
	{"fpu", func(c *Capabilities) *bool { return &c.FPU }},
	{"lsx", func(c *Capabilities) *bool { return &c.LSX }},
	{"lasx", func(c *Capabilities) *bool { return &c.LASX }},
	{"lam", func(c *Capabilities) *bool { return &c.LAM }},
	{"ual", func(c *Capabilities) *bool { return &c.UAL }},
	{"crc", func(c *Capabilities) *bool { return &c.CRC32 }},
	{"complex", func(c *Capabilities) *bool { return &c.Complex }},
	{"crypto", func(c *Capabilities) *bool { return &c.Crypto }},
	{"lvz", func(c *Capabilities) *bool { return &c.LVZ }},
	{"lbtx86", func(c *Capabilities) *bool { return &c.LBTX86 }},
	{"lbtarm", func(c *Capabilities) *bool { return &c.LBTARM }},
	{"lbtmips", func(c *Capabilities) *bool { return &c.LBTMIPS }},
}

// ParseCapabilities reads "la64" followed by _-separated feature names,
// e.g. "la64_fpu_lsx". "la464" selects LA464(). LSX implies FPU and LASX
// implies LSX.
func ParseCapabilities(s string) (Capabilities, error) {
	var c Capabilities
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "la464" {
		return LA464(), nil
	}
	parts := strings.Split(s, "_")
	if parts[0] != "la64" {
		return c, fmt.Errorf("isa %q: expected la64 prefix", s)
	}
	for _, ext := range parts[1:] {
		found := false
		for _, f := range extensions {
			if f.name == ext {
				*f.get(&c) = true
				found = true
			}
		}
		if !found {
			return c, fmt.Errorf("isa %q: unknown feature %q", s, ext)
		}
	}
	if c.LASX {
		c.LSX = true
	}
	if c.LSX {
		c.FPU = true
	}
	return c, nil
}

func (c Capabilities) String() string {
	var b strings.Builder
	b.WriteString("la64")
	for _, f := range extensions {
		if *f.get(&c) {
			b.WriteString("_")
			b.WriteString(f.name)
		}
	}
	return b.String()
}
