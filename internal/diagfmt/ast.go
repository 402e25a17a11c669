package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/types"
)

// ASTNodeOutput is one node of the JSON AST dump.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
	Fields   map[string]any  `json:"fields,omitempty"`
}

// dumpNode is the intermediate tree both dump formats are built from.
type dumpNode struct {
	label    string
	children []*dumpNode
}

func (n *dumpNode) add(label string) *dumpNode {
	child := &dumpNode{label: label}
	n.children = append(n.children, child)
	return child
}

// FormatASTPretty prints the parsed file as an indented declaration
// tree.
func FormatASTPretty(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file not found")
	}

	header := "File"
	if fs != nil {
		header = fs.Get(file.Span.File).FormatPath("auto", fs.BaseDir())
	}
	fmt.Fprintf(w, "%s (span: %s)\n", header, formatSpan(file.Span, fs))

	root := &dumpNode{}
	for i, declID := range file.Decls {
		root.children = append(root.children, buildDeclNode(builder, declID, fs, i))
	}
	printDumpNode(w, root, "")
	return nil
}

func printDumpNode(w io.Writer, n *dumpNode, prefix string) {
	for i, child := range n.children {
		connector, childPrefix := "├─ ", prefix+"│  "
		if i == len(n.children)-1 {
			connector, childPrefix = "└─ ", prefix+"   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, child.label)
		printDumpNode(w, child, childPrefix)
	}
}

func buildDeclNode(builder *ast.Builder, declID ast.DeclID, fs *source.FileSet, idx int) *dumpNode {
	decl := builder.Decls.Get(declID)
	if decl == nil {
		return &dumpNode{label: fmt.Sprintf("Decl[%d]: <nil>", idx)}
	}

	span := formatSpan(decl.Span, fs)
	switch decl.Kind {
	case ast.DeclImport:
		node := &dumpNode{label: fmt.Sprintf("Decl[%d]: Import (span: %s)", idx, span)}
		if imp, ok := builder.Decls.Import(declID); ok {
			names := make([]string, 0, len(imp.Names))
			for _, n := range imp.Names {
				names = append(names, builder.MustLookup(n.Name))
			}
			node.add("Names: " + strings.Join(names, ", "))
			node.add(fmt.Sprintf("From: %q", builder.MustLookup(imp.From)))
		}
		return node

	case ast.DeclClass:
		cls, ok := builder.Decls.Class(declID)
		if !ok {
			return &dumpNode{label: fmt.Sprintf("Decl[%d]: Class <broken> (span: %s)", idx, span)}
		}
		node := &dumpNode{label: fmt.Sprintf("Decl[%d]: Class %s (span: %s)", idx, builder.MustLookup(cls.Name), span)}
		if cls.Exported {
			node.add("Exported: true")
		}
		for _, decID := range cls.Decorators {
			node.add("Decorator: " + decoratorString(builder, decID))
		}
		if cls.Extends != source.NoStringID {
			node.add("Extends: " + builder.MustLookup(cls.Extends))
		}
		for i, memberID := range cls.Members {
			node.children = append(node.children, buildMemberNode(builder, memberID, fs, i))
		}
		return node

	case ast.DeclInterface:
		iface, ok := builder.Decls.Interface(declID)
		if !ok {
			return &dumpNode{label: fmt.Sprintf("Decl[%d]: Interface <broken> (span: %s)", idx, span)}
		}
		node := &dumpNode{label: fmt.Sprintf("Decl[%d]: Interface %s (span: %s)", idx, builder.MustLookup(iface.Name), span)}
		if iface.Extends != source.NoStringID {
			node.add("Extends: " + builder.MustLookup(iface.Extends))
		}
		node.add("Body: " + types.Render(builder, iface.Body))
		return node

	case ast.DeclTypeAlias:
		alias, ok := builder.Decls.TypeAlias(declID)
		if !ok {
			return &dumpNode{label: fmt.Sprintf("Decl[%d]: TypeAlias <broken> (span: %s)", idx, span)}
		}
		node := &dumpNode{label: fmt.Sprintf("Decl[%d]: TypeAlias %s (span: %s)", idx, builder.MustLookup(alias.Name), span)}
		node.add("Type: " + types.Render(builder, alias.Type))
		return node
	}

	return &dumpNode{label: fmt.Sprintf("Decl[%d]: Unknown(%d) (span: %s)", idx, decl.Kind, span)}
}

func buildMemberNode(builder *ast.Builder, memberID ast.MemberID, fs *source.FileSet, idx int) *dumpNode {
	member := builder.Members.Get(memberID)
	if member == nil {
		return &dumpNode{label: fmt.Sprintf("Member[%d]: <nil>", idx)}
	}
	span := formatSpan(member.Span, fs)

	switch member.Kind {
	case ast.MemberProperty:
		prop, ok := builder.Members.Property(memberID)
		if !ok {
			return &dumpNode{label: fmt.Sprintf("Member[%d]: Property <broken>", idx)}
		}
		node := &dumpNode{label: fmt.Sprintf("Member[%d]: Property %s (span: %s)", idx, builder.MustLookup(prop.Name), span)}
		for _, decID := range prop.Decorators {
			node.add("Decorator: " + decoratorString(builder, decID))
		}
		if flags := propertyFlags(prop); flags != "" {
			node.add("Flags: " + flags)
		}
		if prop.Type.IsValid() {
			node.add("Type: " + types.Render(builder, prop.Type))
		}
		if prop.Default.IsValid() {
			node.add("Default: " + exprString(builder, prop.Default))
		}
		return node

	case ast.MemberMethod:
		method, ok := builder.Members.Method(memberID)
		if !ok {
			return &dumpNode{label: fmt.Sprintf("Member[%d]: Method <broken>", idx)}
		}
		node := &dumpNode{label: fmt.Sprintf("Member[%d]: Method %s (span: %s)", idx, builder.MustLookup(method.Name), span)}
		for _, decID := range method.Decorators {
			node.add("Decorator: " + decoratorString(builder, decID))
		}
		if len(method.Params) > 0 {
			params := node.add("Params")
			for _, paramID := range method.Params {
				p := builder.Members.Param(paramID)
				if p == nil {
					continue
				}
				label := builder.MustLookup(p.Name)
				if p.Optional {
					label += "?"
				}
				params.add(label + ": " + types.Render(builder, p.Type))
			}
		}
		if method.Return.IsValid() {
			node.add("Return: " + types.Render(builder, method.Return))
		}
		return node
	}

	return &dumpNode{label: fmt.Sprintf("Member[%d]: Unknown(%d)", idx, member.Kind)}
}

func propertyFlags(prop *ast.MemberPropertyData) string {
	var flags []string
	if prop.Optional {
		flags = append(flags, "optional")
	}
	if prop.Readonly {
		flags = append(flags, "readonly")
	}
	if prop.Static {
		flags = append(flags, "static")
	}
	return strings.Join(flags, ", ")
}

func decoratorString(builder *ast.Builder, id ast.DecoratorID) string {
	dec := builder.Decorators.Get(id)
	if dec == nil {
		return "@<nil>"
	}
	var sb strings.Builder
	sb.WriteByte('@')
	sb.WriteString(builder.MustLookup(dec.Name))
	sb.WriteByte('(')
	for i, argID := range dec.Args {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(exprString(builder, argID))
	}
	sb.WriteByte(')')
	return sb.String()
}

// exprString renders an expression in roughly its source spelling.
func exprString(builder *ast.Builder, id ast.ExprID) string {
	expr := builder.Exprs.Get(id)
	if expr == nil {
		return "<nil>"
	}
	switch expr.Kind {
	case ast.ExprIdent:
		ident, _ := builder.Exprs.Ident(id)
		return builder.MustLookup(ident.Name)
	case ast.ExprLit:
		lit, _ := builder.Exprs.Literal(id)
		value := builder.MustLookup(lit.Value)
		if lit.Kind == ast.LitString {
			return fmt.Sprintf("%q", value)
		}
		return value
	case ast.ExprArray:
		arr, _ := builder.Exprs.Array(id)
		parts := make([]string, 0, len(arr.Elements))
		for _, el := range arr.Elements {
			parts = append(parts, exprString(builder, el))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ast.ExprObject:
		obj, _ := builder.Exprs.Object(id)
		if len(obj.Entries) == 0 {
			return "{}"
		}
		parts := make([]string, 0, len(obj.Entries))
		for _, entry := range obj.Entries {
			parts = append(parts, builder.MustLookup(entry.Key)+": "+exprString(builder, entry.Value))
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	case ast.ExprNeg:
		neg, _ := builder.Exprs.Neg(id)
		return "-" + exprString(builder, neg.Operand)
	}
	return "<unknown expr>"
}

// FormatASTJSON prints the parsed file as an indented JSON tree.
func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file not found")
	}

	var children []ASTNodeOutput
	for _, declID := range file.Decls {
		children = append(children, declJSON(builder, declID))
	}

	output := ASTNodeOutput{
		Type:     "File",
		Span:     file.Span,
		Children: children,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func declJSON(builder *ast.Builder, declID ast.DeclID) ASTNodeOutput {
	decl := builder.Decls.Get(declID)
	if decl == nil {
		return ASTNodeOutput{Type: "Decl", Kind: "Missing"}
	}

	out := ASTNodeOutput{Type: "Decl", Span: decl.Span}
	switch decl.Kind {
	case ast.DeclImport:
		out.Kind = "Import"
		if imp, ok := builder.Decls.Import(declID); ok {
			var names []string
			for _, n := range imp.Names {
				names = append(names, builder.MustLookup(n.Name))
			}
			out.Fields = map[string]any{
				"names": names,
				"from":  builder.MustLookup(imp.From),
			}
		}
	case ast.DeclClass:
		out.Kind = "Class"
		if cls, ok := builder.Decls.Class(declID); ok {
			out.Text = builder.MustLookup(cls.Name)
			fields := map[string]any{}
			if cls.Exported {
				fields["exported"] = true
			}
			if cls.Extends != source.NoStringID {
				fields["extends"] = builder.MustLookup(cls.Extends)
			}
			if decorators := decoratorStrings(builder, cls.Decorators); len(decorators) > 0 {
				fields["decorators"] = decorators
			}
			if len(fields) > 0 {
				out.Fields = fields
			}
			for _, memberID := range cls.Members {
				out.Children = append(out.Children, memberJSON(builder, memberID))
			}
		}
	case ast.DeclInterface:
		out.Kind = "Interface"
		if iface, ok := builder.Decls.Interface(declID); ok {
			out.Text = builder.MustLookup(iface.Name)
			out.Fields = map[string]any{"body": types.Render(builder, iface.Body)}
			if iface.Extends != source.NoStringID {
				out.Fields["extends"] = builder.MustLookup(iface.Extends)
			}
		}
	case ast.DeclTypeAlias:
		out.Kind = "TypeAlias"
		if alias, ok := builder.Decls.TypeAlias(declID); ok {
			out.Text = builder.MustLookup(alias.Name)
			out.Fields = map[string]any{"type": types.Render(builder, alias.Type)}
		}
	default:
		out.Kind = fmt.Sprintf("Unknown(%d)", decl.Kind)
	}
	return out
}

func memberJSON(builder *ast.Builder, memberID ast.MemberID) ASTNodeOutput {
	member := builder.Members.Get(memberID)
	if member == nil {
		return ASTNodeOutput{Type: "Member", Kind: "Missing"}
	}

	out := ASTNodeOutput{Type: "Member", Span: member.Span}
	switch member.Kind {
	case ast.MemberProperty:
		out.Kind = "Property"
		if prop, ok := builder.Members.Property(memberID); ok {
			out.Text = builder.MustLookup(prop.Name)
			fields := map[string]any{}
			if decorators := decoratorStrings(builder, prop.Decorators); len(decorators) > 0 {
				fields["decorators"] = decorators
			}
			if prop.Type.IsValid() {
				fields["type"] = types.Render(builder, prop.Type)
			}
			if prop.Default.IsValid() {
				fields["default"] = exprString(builder, prop.Default)
			}
			if prop.Optional {
				fields["optional"] = true
			}
			if prop.Readonly {
				fields["readonly"] = true
			}
			if prop.Static {
				fields["static"] = true
			}
			if len(fields) > 0 {
				out.Fields = fields
			}
		}
	case ast.MemberMethod:
		out.Kind = "Method"
		if method, ok := builder.Members.Method(memberID); ok {
			out.Text = builder.MustLookup(method.Name)
			fields := map[string]any{}
			if decorators := decoratorStrings(builder, method.Decorators); len(decorators) > 0 {
				fields["decorators"] = decorators
			}
			var params []string
			for _, paramID := range method.Params {
				if p := builder.Members.Param(paramID); p != nil {
					params = append(params, builder.MustLookup(p.Name)+": "+types.Render(builder, p.Type))
				}
			}
			if len(params) > 0 {
				fields["params"] = params
			}
			if method.Return.IsValid() {
				fields["return"] = types.Render(builder, method.Return)
			}
			if len(fields) > 0 {
				out.Fields = fields
			}
		}
	default:
		out.Kind = fmt.Sprintf("Unknown(%d)", member.Kind)
	}
	return out
}

func decoratorStrings(builder *ast.Builder, ids []ast.DecoratorID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, decoratorString(builder, id))
	}
	return out
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}
