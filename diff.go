package bconf

import (
	"strings"

	"github.com/bconf-format/bconf/encode"
	"github.com/bconf-format/bconf/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line diff of the canonical forms of two trees.  The
// result is empty exactly when Equal(a, b); lines are prefixed with
// "- ", "+ ", or "  ".
func Diff(a, b *ir.Node) string {
	at, bt := encode.MustString(a), encode.MustString(b)
	if at == bt {
		return ""
	}
	diffCfg := diffpatch.New()
	ca, cb, lineIndex := diffCfg.DiffLinesToChars(at, bt)
	diffs := diffCfg.DiffMain(ca, cb, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lineIndex)

	var sb strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range splitDiffLines(diff.Text) {
			sb.WriteString(prefix)
			sb.WriteString(ln)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitDiffLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
