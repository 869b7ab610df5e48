package day03

import (
	"math"
	"strconv"
	"strings"
)

const (
	markerMul     = "mul("
	markerDo      = "do()"
	markerDont    = "don't()"
	mulArgsSep    = ','
	mulArgsClose  = ')'
	markerNotSeen = -1
)

// Kind identifies a recognised instruction.
type Kind int

const (
	Multiply Kind = iota
	Enable
	Disable
)

func (k Kind) String() string {
	switch k {
	case Enable:
		return "do"
	case Disable:
		return "don't"
	default:
		return "mul"
	}
}

// Instruction is one token found in the corrupted memory, with its byte
// offset in the source text.
type Instruction struct {
	Kind   Kind
	X, Y   int
	Offset int
}

// Product is X*Y for Multiply instructions and 0 otherwise.
func (i Instruction) Product() int {
	if i.Kind != Multiply {
		return 0
	}
	return i.X * i.Y
}

// Scan walks text left to right and returns every well-formed instruction
// in order. A mul( that is not followed by exactly "digits,digits)" is
// dropped and scanning resumes right after its opening parenthesis.
func Scan(text string) []Instruction {
	var out []Instruction
	pos := 0
	for pos < len(text) {
		offset, marker := nextMarker(text, pos)
		if offset == markerNotSeen {
			break
		}
		switch marker {
		case markerDo:
			out = append(out, Instruction{Kind: Enable, Offset: offset})
			pos = offset + len(markerDo)
		case markerDont:
			out = append(out, Instruction{Kind: Disable, Offset: offset})
			pos = offset + len(markerDont)
		case markerMul:
			argsStart := offset + len(markerMul)
			x, y, consumed, ok := parseMulArgs(text[argsStart:])
			if !ok {
				pos = argsStart
				continue
			}
			out = append(out, Instruction{Kind: Multiply, X: x, Y: y, Offset: offset})
			pos = argsStart + consumed
		}
	}
	return out
}

// Sum adds up the products in instrs. With toggles set, do() and don't()
// switch accumulation on and off, starting enabled.
func Sum(instrs []Instruction, toggles bool) int {
	enabled := true
	total := 0
	for _, instr := range instrs {
		switch instr.Kind {
		case Enable:
			enabled = true
		case Disable:
			enabled = false
		case Multiply:
			if enabled || !toggles {
				total += instr.Product()
			}
		}
	}
	return total
}

// nextMarker finds the earliest marker at or after pos.
func nextMarker(text string, pos int) (int, string) {
	best, bestMarker := markerNotSeen, ""
	for _, marker := range []string{markerMul, markerDo, markerDont} {
		idx := strings.Index(text[pos:], marker)
		if idx < 0 {
			continue
		}
		if best == markerNotSeen || pos+idx < best {
			best, bestMarker = pos+idx, marker
		}
	}
	return best, bestMarker
}

// parseMulArgs expects s to start with "X,Y)". It returns the operands and
// the number of bytes consumed including the closing parenthesis. Operands
// whose product does not fit in an int are rejected.
func parseMulArgs(s string) (x, y, consumed int, ok bool) {
	x, n, ok := leadingInt(s)
	if !ok || n >= len(s) || s[n] != mulArgsSep {
		return 0, 0, 0, false
	}
	consumed = n + 1
	y, n, ok = leadingInt(s[consumed:])
	if !ok {
		return 0, 0, 0, false
	}
	consumed += n
	if consumed >= len(s) || s[consumed] != mulArgsClose {
		return 0, 0, 0, false
	}
	if x != 0 && y > math.MaxInt/x {
		return 0, 0, 0, false
	}
	return x, y, consumed + 1, true
}

func leadingInt(s string) (int, int, bool) {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, 0, false
	}
	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, 0, false
	}
	return v, n, true
}
