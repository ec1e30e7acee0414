package engine

import (
	"fmt"
	"slices"
	"strings"
)

// ModifyType enumerates the kinds of line modification. ModifyRandom is a
// meta-value resolved to one of the four terminal kinds before use; it never
// reaches a LineTransform.
type ModifyType int

const (
	// ModifyRandom resolves uniformly to one of the terminal kinds
	ModifyRandom ModifyType = iota
	// ModifyPrepend inserts a new line before the target line
	ModifyPrepend
	// ModifyAppend inserts a new line after the target line
	ModifyAppend
	// ModifyPrefix prepends content to the target line itself
	ModifyPrefix
	// ModifySuffix appends content to the first line starting with the target
	ModifySuffix
)

// terminalModifyTypes are the kinds ModifyRandom resolves to.
var terminalModifyTypes = []ModifyType{ModifyPrepend, ModifyAppend, ModifyPrefix, ModifySuffix}

func (t ModifyType) String() string {
	switch t {
	case ModifyRandom:
		return "random"
	case ModifyPrepend:
		return "prepend"
	case ModifyAppend:
		return "append"
	case ModifyPrefix:
		return "prefix"
	case ModifySuffix:
		return "suffix"
	}
	return fmt.Sprintf("ModifyType(%d)", int(t))
}

// ParseModifyType parses a --type flag value.
func ParseModifyType(s string) (ModifyType, error) {
	switch strings.ToLower(s) {
	case "random", "":
		return ModifyRandom, nil
	case "prepend":
		return ModifyPrepend, nil
	case "append":
		return ModifyAppend, nil
	case "prefix":
		return ModifyPrefix, nil
	case "suffix":
		return ModifySuffix, nil
	}
	return ModifyRandom, fmt.Errorf("unknown modify type %q (want random, prepend, append, prefix or suffix)", s)
}

// LineTransform fully determines one textual edit to a file: insert or
// extend around the first line matching Target. Kind must be terminal.
type LineTransform struct {
	Target  string
	Content string
	Kind    ModifyType
}

// Apply returns the transformed line list. Only the first matching line is
// affected; with no match the input is returned unchanged. ModifySuffix
// matches the first line that starts with Target, the other kinds require
// line equality.
func (t LineTransform) Apply(lines []string) []string {
	switch t.Kind {
	case ModifyPrepend:
		for i, line := range lines {
			if line == t.Target {
				return slices.Insert(slices.Clone(lines), i, t.Content)
			}
		}
	case ModifyAppend:
		for i, line := range lines {
			if line == t.Target {
				return slices.Insert(slices.Clone(lines), i+1, t.Content)
			}
		}
	case ModifyPrefix:
		for i, line := range lines {
			if line == t.Target {
				out := slices.Clone(lines)
				out[i] = t.Content + " " + line
				return out
			}
		}
	case ModifySuffix:
		for i, line := range lines {
			if strings.HasPrefix(line, t.Target) {
				out := slices.Clone(lines)
				out[i] = line + " " + t.Content
				return out
			}
		}
	}
	return lines
}
