package ast

import (
	"fmt"
	"strings"
)

// Dump renders the tree as indented text for debugging. Scalars print as
// key = value, objects and date blocks as key = { ... } with their children
// indented one level, and lists print each item on its own line.
//
// Example:
//
//	root = {
//	  owner = "FRA"
//	  1444.11.11 = {
//	    controller = "ENG"
//	  }
//	}
func Dump(n Node) string {
	var sb strings.Builder
	dumpNode(&sb, n, 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, n Node, indent int) {
	writeIndent(sb, indent)

	switch node := n.(type) {
	case *ScalarNode:
		fmt.Fprintf(sb, "%s = %s\n", node.Key(), formatScalar(node.Value()))

	case *ObjectNode:
		fmt.Fprintf(sb, "%s = {\n", node.Key())
		for _, child := range node.Children() {
			dumpNode(sb, child, indent+1)
		}
		writeIndent(sb, indent)
		sb.WriteString("}\n")

	case *DateNode:
		fmt.Fprintf(sb, "%s = {\n", node.Date())
		for _, child := range node.Children() {
			dumpNode(sb, child, indent+1)
		}
		writeIndent(sb, indent)
		sb.WriteString("}\n")

	case *ListNode:
		fmt.Fprintf(sb, "%s = [\n", node.Key())
		for _, item := range node.Items() {
			if scalar, ok := item.(*ScalarNode); ok && scalar.Key() == "" {
				writeIndent(sb, indent+1)
				sb.WriteString(formatScalar(scalar.Value()))
				sb.WriteString("\n")
				continue
			}
			dumpNode(sb, item, indent+1)
		}
		writeIndent(sb, indent)
		sb.WriteString("]\n")
	}
}

func formatScalar(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

func writeIndent(sb *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		sb.WriteString("  ")
	}
}
