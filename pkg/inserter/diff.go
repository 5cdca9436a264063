package inserter

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContextLines is the number of unchanged lines shown around each hunk.
const diffContextLines = 2

// diffOp is one line of a computed line-level diff.
type diffOp struct {
	kind diffmatchpatch.Operation
	text string
}

// lineOps computes a line-level diff between before and after. Lines are
// encoded as runes so the diff never splits inside a line, then hydrated
// back to their text.
func lineOps(before, after string) []diffOp {
	dmp := diffmatchpatch.New()
	src, dst, lineArray := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(src, dst, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var ops []diffOp
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			ops = append(ops, diffOp{kind: d.Type, text: ln})
		}
	}
	return ops
}

// unifiedDiff renders a unified-style diff between before and after, with
// diffContextLines lines of context and @@ hunk headers. Returns "" when
// the inputs are line-identical.
func unifiedDiff(before, after string) string {
	ops := lineOps(before, after)

	include := make([]bool, len(ops))
	changed := false
	for i, op := range ops {
		if op.kind == diffmatchpatch.DiffEqual {
			continue
		}
		changed = true
		lo := i - diffContextLines
		if lo < 0 {
			lo = 0
		}
		hi := i + diffContextLines
		if hi > len(ops)-1 {
			hi = len(ops) - 1
		}
		for j := lo; j <= hi; j++ {
			include[j] = true
		}
	}
	if !changed {
		return ""
	}

	var b strings.Builder
	oldLine, newLine := 1, 1
	i := 0
	for i < len(ops) {
		if !include[i] {
			advance(ops[i].kind, &oldLine, &newLine)
			i++
			continue
		}

		// One hunk: a contiguous run of included ops.
		start := i
		for i < len(ops) && include[i] {
			i++
		}
		hunk := ops[start:i]

		oldCount, newCount := 0, 0
		for _, op := range hunk {
			switch op.kind {
			case diffmatchpatch.DiffDelete:
				oldCount++
			case diffmatchpatch.DiffInsert:
				newCount++
			default:
				oldCount++
				newCount++
			}
		}
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", oldLine, oldCount, newLine, newCount)

		for _, op := range hunk {
			switch op.kind {
			case diffmatchpatch.DiffDelete:
				b.WriteString("-" + op.text + "\n")
			case diffmatchpatch.DiffInsert:
				b.WriteString("+" + op.text + "\n")
			default:
				b.WriteString(" " + op.text + "\n")
			}
			advance(op.kind, &oldLine, &newLine)
		}
	}
	return b.String()
}

// advance moves the old/new line counters past one diff op.
func advance(kind diffmatchpatch.Operation, oldLine, newLine *int) {
	switch kind {
	case diffmatchpatch.DiffDelete:
		*oldLine++
	case diffmatchpatch.DiffInsert:
		*newLine++
	default:
		*oldLine++
		*newLine++
	}
}

// printDiff writes the unified diff of a pending change to the console.
func (ins *inserter) printDiff(before, after string) {
	diff := unifiedDiff(before, after)
	if diff == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		ins.console.Diff(line)
	}
}
