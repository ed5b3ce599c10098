package literal

import "github.com/coregx/regexlite/internal/ast"

// Extract walks tree's top-level concatenation and collects maximal runs of
// consecutive unquantified literal bytes as candidate literals. A run
// starting at the first child of the concatenation is flagged Prefix; one
// ending at the last child is flagged Suffix. Every run found this way is
// Required: since these atoms carry no quantifier (Min==Max==1) and sit
// directly in the top-level concatenation (not inside an alternation or a
// repeated group), the match cannot skip over them.
//
// Patterns whose top level is an alternation rather than a concatenation
// yield an empty Seq: no substring can be asserted present in every branch
// without walking each branch, which this first pass does not attempt.
func Extract(tree *ast.Tree) *Seq {
	seq := NewSeq()

	body := tree.Node(tree.Node(tree.Root).Children[0])
	if body.Kind != ast.NodeGroup {
		return seq
	}
	children := body.Children
	n := len(children)

	var run []byte
	runStart := -1
	flush := func(endIdx int) {
		if len(run) == 0 {
			return
		}
		lit := Literal{
			Bytes:    append([]byte(nil), run...),
			Required: true,
			Prefix:   runStart == 0,
			Suffix:   endIdx == n-1,
			Pos:      runStart,
		}
		seq.Add(lit)
		run = nil
		runStart = -1
	}

	for i, c := range children {
		node := tree.Node(c)
		if node.Kind == ast.NodeElement && node.Min == 1 && node.Max == 1 {
			if runStart == -1 {
				runStart = i
			}
			run = append(run, node.Value...)
			continue
		}
		flush(i - 1)
	}
	flush(n - 1)

	return seq
}
