package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"serpent/internal/ast"
	"serpent/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

type treeBlock struct {
	lines []string
	width int
	root  int
}

// buildTreeNode mirrors the subtree at r, labeling every node with its
// kind, its salient scalar fields and its location.
func buildTreeNode(r ast.Ref, file *source.File) *treeNode {
	node := &treeNode{
		label: fmt.Sprintf("%s (span: %s)", describe(r.Value()), formatSpan(r.Location(), file)),
	}
	for _, c := range ast.Children(r) {
		node.children = append(node.children, buildTreeNode(c, file))
	}
	return node
}

// Tree prints an indented debug tree of mod. file, when non-nil, turns
// offsets into line:col pairs and supplies the header.
func Tree(w io.Writer, mod *ast.Mod, file *source.File) error {
	if mod == nil {
		return fmt.Errorf("nil module")
	}
	root := buildTreeNode(mod, file)
	if file != nil {
		fmt.Fprintf(w, "%s\n", file.FormatPath("auto", ""))
	}
	fmt.Fprintln(w, root.label)
	writeChildren(w, root, "")
	return nil
}

func writeChildren(w io.Writer, node *treeNode, prefix string) {
	for i, child := range node.children {
		branch, next := "├─ ", "│  "
		if i == len(node.children)-1 {
			branch, next = "└─ ", "   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.label)
		writeChildren(w, child, prefix+next)
	}
}

// TreeArt prints mod as a top-down ASCII drawing. Wide trees get very wide;
// it is meant for small snippets.
func TreeArt(w io.Writer, mod *ast.Mod, file *source.File) error {
	if mod == nil {
		return fmt.Errorf("nil module")
	}
	block := renderTree(buildTreeNode(mod, file))
	for _, line := range block.lines {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	return nil
}

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Detail   string          `json:"detail,omitempty"`
	Start    uint32          `json:"start"`
	End      uint32          `json:"end"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

func buildJSONNode(r ast.Ref) ASTNodeOutput {
	out := ASTNodeOutput{
		Type:  ast.KindName(r.Value()),
		Start: r.Location().Start(),
		End:   r.Location().End(),
	}
	if d := describe(r.Value()); d != out.Type {
		out.Detail = strings.TrimPrefix(d, out.Type+" ")
	}
	for _, c := range ast.Children(r) {
		out.Children = append(out.Children, buildJSONNode(c))
	}
	return out
}

// TreeJSON writes mod as nested JSON objects.
func TreeJSON(w io.Writer, mod *ast.Mod) error {
	if mod == nil {
		return fmt.Errorf("nil module")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONNode(mod))
}

const artSpacing = 3

// renderTree draws node above its children. Children are laid out side by
// side; the label is centered over the span of their roots, and whichever of
// the two would start left of column 0 is shifted right instead.
func renderTree(node *treeNode) treeBlock {
	labelWidth := runewidth.StringWidth(node.label)
	if len(node.children) == 0 {
		return treeBlock{lines: []string{node.label}, width: labelWidth, root: labelWidth / 2}
	}

	kids := make([]treeBlock, len(node.children))
	roots := make([]int, len(node.children))
	height, offset := 0, 0
	for i, child := range node.children {
		kids[i] = renderTree(child)
		roots[i] = offset + kids[i].root
		offset += kids[i].width + artSpacing
		height = max(height, len(kids[i].lines))
	}
	kidsWidth := offset - artSpacing

	labelAt := (roots[0]+roots[len(roots)-1])/2 - labelWidth/2
	kidsAt := 0
	if labelAt < 0 {
		kidsAt, labelAt = -labelAt, 0
	}
	root := labelAt + labelWidth/2
	width := max(labelAt+labelWidth, kidsAt+kidsWidth)

	lines := make([]string, 0, height+2)
	lines = append(lines, runewidth.FillRight(strings.Repeat(" ", labelAt)+node.label, width))

	connector := []byte(strings.Repeat(" ", width))
	connector[root] = '|'
	for _, r := range roots {
		switch pos := r + kidsAt; {
		case pos < root:
			connector[pos] = '/'
		case pos > root:
			connector[pos] = '\\'
		default:
			connector[pos] = '|'
		}
	}
	lines = append(lines, string(connector))

	for row := range height {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", kidsAt))
		for i, kid := range kids {
			line := ""
			if row < len(kid.lines) {
				line = kid.lines[row]
			}
			sb.WriteString(runewidth.FillRight(line, kid.width))
			if i != len(kids)-1 {
				sb.WriteString(strings.Repeat(" ", artSpacing))
			}
		}
		lines = append(lines, runewidth.FillRight(sb.String(), width))
	}
	return treeBlock{lines: lines, width: width, root: root}
}
