package libdiff

import (
	"strings"

	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/ir/pointer"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func DiffString(p pointer.Pointer, from, to *ir.Node) []Change {
	if from.String == to.String {
		return nil
	}
	return []Change{MakeChange(p, from, to)}
}

// TextDiff renders a line diff of from and to, each line prefixed by '-',
// '+' or ' '.
func TextDiff(from, to string) string {
	diffCfg := diffpatch.New()
	fromChars, toChars, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(fromChars, toChars, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	b := &strings.Builder{}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			b.WriteString(prefix)
			b.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				b.WriteByte('\n')
			}
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
