package riscv

import (
	"fmt"
	"strings"
)

// Capabilities describes the target hart. It is fixed for the lifetime of
// an Emitter.
type Capabilities struct {
	RV64   bool
	M      bool
	Zmmul  bool
	A      bool
	F      bool
	D      bool
	C      bool
	Zcb    bool
	V      bool
	Zba    bool
	Zbb    bool
	Zbc    bool
	Zbs    bool
	Zicond bool
	Zicsr  bool
	Zfh    bool
	Zfhmin bool
	Zfa    bool
}

func RV64GC() Capabilities {
	return Capabilities{RV64: true, M: true, A: true, F: true, D: true, C: true, Zicsr: true}
}

func RV64GCV() Capabilities {
	c := RV64GC()
	c.V = true
	c.Zba, c.Zbb, c.Zbs = true, true, true
	c.Zcb = true
	return c
}

func RV32IMC() Capabilities {
	return Capabilities{M: true, C: true, Zicsr: true}
}

// Bits is XLEN.
func (c Capabilities) Bits() int {
	if c.RV64 {
		return 64
	}
	return 32
}

// FloatBits is FLEN, 0 without F.
func (c Capabilities) FloatBits() int {
	switch {
	case c.D:
		return 64
	case c.F:
		return 32
	}
	return 0
}

func (c Capabilities) MulDiv() bool { return c.M }
func (c Capabilities) Mul() bool    { return c.M || c.Zmmul }

type extFlag struct {
	name string
	get  func(*Capabilities) *bool
}

var singleLetter = []extFlag{
	{"m", func(c *Capabilities) *bool { return &c.M }},
	{"a", func(c *Capabilities) *bool { return &c.A }},
	{"f", func(c *Capabilities) *bool { return &c.F }},
	{"d", func(c *Capabilities) *bool { return &c.D }},
	{"c", func(c *Capabilities) *bool { return &c.C }},
	{"v", func(c *Capabilities) *bool { return &c.V }},
}

var multiLetter = []extFlag{
	{"zmmul", func(c *Capabilities) *bool { return &c.Zmmul }},
	{"zcb", func(c *Capabilities) *bool { return &c.Zcb }},
	{"zba", func(c *Capabilities) *bool { return &c.Zba }},
	{"zbb", func(c *Capabilities) *bool { return &c.Zbb }},
	{"zbc", func(c *Capabilities) *bool { return &c.Zbc }},
	{"zbs", func(c *Capabilities) *bool { return &c.Zbs }},
	{"zicond", func(c *Capabilities) *bool { return &c.Zicond }},
	{"zicsr", func(c *Capabilities) *bool { return &c.Zicsr }},
	{"zfh", func(c *Capabilities) *bool { return &c.Zfh }},
	{"zfhmin", func(c *Capabilities) *bool { return &c.Zfhmin }},
	{"zfa", func(c *Capabilities) *bool { return &c.Zfa }},
}

// ParseCapabilities reads an ISA string such as "rv64gc_zba_zbb".
// "g" expands to imafd_zicsr.
func ParseCapabilities(s string) (Capabilities, error) {
	var c Capabilities
	s = strings.ToLower(strings.TrimSpace(s))
	parts := strings.Split(s, "_")
	base := parts[0]
	switch {
	case strings.HasPrefix(base, "rv64"):
		c.RV64 = true
	case strings.HasPrefix(base, "rv32"):
	default:
		return c, fmt.Errorf("isa %q: expected rv32 or rv64 prefix", s)
	}
	letters := base[4:]
	if letters == "" || (letters[0] != 'i' && letters[0] != 'g' && letters[0] != 'e') {
		return c, fmt.Errorf("isa %q: base must be i, e or g", s)
	}
	for _, ch := range letters {
		switch ch {
		case 'i', 'e':
			continue
		case 'g':
			c.M, c.A, c.F, c.D, c.Zicsr = true, true, true, true, true
			continue
		}
		found := false
		for _, f := range singleLetter {
			if f.name == string(ch) {
				*f.get(&c) = true
				found = true
			}
		}
		if !found {
			return c, fmt.Errorf("isa %q: unknown extension %q", s, string(ch))
		}
	}
	for _, ext := range parts[1:] {
		found := false
		for _, f := range multiLetter {
			if f.name == ext {
				*f.get(&c) = true
				found = true
			}
		}
		if !found {
			return c, fmt.Errorf("isa %q: unknown extension %q", s, ext)
		}
	}
	if c.D && !c.F {
		return c, fmt.Errorf("isa %q: d requires f", s)
	}
	if (c.Zfh || c.Zfhmin || c.Zfa) && !c.F {
		return c, fmt.Errorf("isa %q: zfh, zfhmin and zfa require f", s)
	}
	if c.Zfh {
		c.Zfhmin = true
	}
	if c.F {
		c.Zicsr = true
	}
	return c, nil
}

func (c Capabilities) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rv%di", c.Bits())
	for _, f := range singleLetter {
		if *f.get(&c) {
			b.WriteString(f.name)
		}
	}
	for _, f := range multiLetter {
		if *f.get(&c) {
			b.WriteString("_")
			b.WriteString(f.name)
		}
	}
	return b.String()
}
