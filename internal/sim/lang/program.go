// Package lang tokenizes bot program source into a flat token stream and
// resolves labels to token indices. It has no notion of execution — that
// lives in the interpreter, one level up, which consumes a *Program.
package lang

import "strings"

// Program is an immutable, tokenized bot source: a flat token sequence plus
// a label name -> token index map. Both are built once by Parse and never
// mutated afterward.
type Program struct {
	Source string
	Tokens []string
	Labels map[string]int

	// LineTokenCounts holds the number of tokens produced by each source
	// line, in order. It lets the bot runtime recover the offending source
	// line from a program counter for fault diagnostics (see FaultLine).
	LineTokenCounts []int

	lines []string
}

// Parse tokenizes program source per line:
//  1. truncate at the first '#' (comment)
//  2. trim whitespace; an empty line yields zero tokens
//  3. a line containing ':' splits once on it: the left side (trimmed)
//     becomes a single "label:" token, the right side is whitespace-split
//     and appended
//  4. otherwise the whole line is whitespace-split
//
// Label names are derived by stripping the trailing colon and any
// surrounding double quotes, so a jump target can be referenced either as
// a bare identifier or as a quoted string. A later label definition with
// the same name overwrites an earlier one.
func Parse(source string) *Program {
	lines := strings.Split(source, "\n")
	tokens := make([]string, 0, len(lines)*2)
	counts := make([]int, 0, len(lines))

	for _, line := range lines {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)

		var lineTokens []string
		switch {
		case line == "":
			// no tokens
		case strings.Contains(line, ":"):
			parts := strings.SplitN(line, ":", 2)
			label := strings.TrimSpace(parts[0])
			rest := strings.TrimSpace(parts[1])
			lineTokens = append(lineTokens, label+":")
			if rest != "" {
				lineTokens = append(lineTokens, strings.Fields(rest)...)
			}
		default:
			lineTokens = strings.Fields(line)
		}

		tokens = append(tokens, lineTokens...)
		counts = append(counts, len(lineTokens))
	}

	labels := make(map[string]int)
	for i, tok := range tokens {
		if strings.HasSuffix(tok, ":") {
			name := strings.TrimSuffix(tok, ":")
			name = unquote(name)
			labels[name] = i + 1
		}
	}

	return &Program{
		Source:          source,
		Tokens:          tokens,
		Labels:          labels,
		LineTokenCounts: counts,
		lines:           lines,
	}
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// ResolveLabel looks up a label name, or false if it is undefined.
func (p *Program) ResolveLabel(name string) (int, bool) {
	idx, ok := p.Labels[name]
	return idx, ok
}

// FaultLine reconstructs the source line that produced the token executed
// just before pc, for diagnostic messages. pc is the program counter value
// immediately after the faulting opcode's token was consumed (i.e. already
// advanced past it), matching the bot runtime's pc at the moment a fault is
// raised.
func (p *Program) FaultLine(pc int) string {
	n := 0
	for i, count := range p.LineTokenCounts {
		n += count
		if n >= pc {
			if i < len(p.lines) {
				return strings.TrimSpace(p.lines[i])
			}
			break
		}
	}
	return ""
}

// Len returns the number of tokens in the program.
func (p *Program) Len() int {
	return len(p.Tokens)
}
