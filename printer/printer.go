// Package printer prints DOT ASTs formatted in the spirit of [gofumpt].
//
// [gofumpt]: https://github.com/mvdan/gofumpt
package printer

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/dsherret/dprint"
	"github.com/dsherret/dprint/ast"
	"github.com/dsherret/dprint/printitem"
	"github.com/dsherret/dprint/token"
)

// printOptions is the [printitem.Options] every graph is printed with. Indentation always
// renders as a single tab per level, keeping output width independent of the reader's
// configured tab size.
var printOptions = printitem.Options{MaxWidth: 80, UseTabs: true}

// ignoreFileMarker, found in a leading line comment, makes Print copy the input through
// unformatted. Mirrors dprint's own dprint-ignore-file convention.
const ignoreFileMarker = "dotfmt-ignore-file"

// Printer formats DOT code.
type Printer struct {
	r io.Reader // r reader to parse dot code from
	w io.Writer // w writer to output formatted dot code to
}

// New creates a new printer that reads DOT code from r, formats it, and writes the
// formatted output to w.
func New(r io.Reader, w io.Writer) *Printer {
	return &Printer{r: r, w: w}
}

// Print parses the DOT code from the reader and writes the formatted output to the writer.
// Returns an error if parsing or formatting fails.
func (p *Printer) Print() error {
	src, err := io.ReadAll(p.r)
	if err != nil {
		return err
	}

	if hasIgnoreFileMarker(src) {
		_, err := p.w.Write(src)
		return err
	}

	ps, err := dot.NewParser(bytes.NewReader(src))
	if err != nil {
		return err
	}

	graph, err := ps.Parse()
	if err != nil {
		return err
	}

	if errs := ps.Errors(); len(errs) > 0 {
		return errs[0]
	}

	d := new(printitem.Doc)
	p.layoutGraph(d, graph)
	_, err = io.WriteString(p.w, printitem.Print(d.Build(), printOptions))
	return err
}

// hasIgnoreFileMarker reports whether src's leading line or block comments, before any non-
// comment, non-blank content, contain the ignore-file marker. Mirrors the original dprint
// TypeScript plugin's should_format_file: scan leading comments only, stop at the first real
// token.
func hasIgnoreFileMarker(src []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "/*") {
			if strings.Contains(line, ignoreFileMarker) {
				return true
			}
			continue
		}
		return false
	}
	return false
}

func (p *Printer) layoutGraph(d *printitem.Doc, graph ast.Graph) {
	if graph.IsStrict() {
		d.String(token.Strict.String()).String(" ")
	}

	if graph.Directed {
		d.String(token.Digraph.String())
	} else {
		d.String(token.Graph.String())
	}
	d.String(" ")

	if graph.ID != nil {
		p.layoutID(d, *graph.ID)
		d.String(" ")
	}

	d.String(token.LeftBrace.String())
	d.Indent(func(d *printitem.Doc) {
		p.layoutStmts(d, graph.Stmts)
	})
	d.NewLine().String(token.RightBrace.String())
}

func (p *Printer) layoutStmts(d *printitem.Doc, stmts []ast.Stmt) {
	for _, stmt := range stmts {
		p.layoutStmt(d, stmt)
	}
}

// layoutID prints a DOT [identifier]. newlines without preceding '\' are not mentioned as legal but
// are supported by the DOT tooling; such an identifier is passed through verbatim.
//
// [identifier]: https://graphviz.org/doc/info/lang.html#ids
func (p *Printer) layoutID(d *printitem.Doc, id ast.ID) {
	d.String(id.Literal)
}

func (p *Printer) layoutStmt(d *printitem.Doc, stmt ast.Stmt) {
	switch st := stmt.(type) {
	case *ast.NodeStmt:
		p.layoutNodeStmt(d, st)
	case *ast.EdgeStmt:
		p.layoutEdgeStmt(d, st)
	case *ast.AttrStmt:
		p.layoutAttrStmt(d, st)
	case ast.Attribute:
		d.NewLine()
		p.layoutAttribute(d, st)
	case ast.Subgraph:
		d.NewLine()
		p.layoutSubgraph(d, st)
	}
}

func (p *Printer) layoutNodeStmt(d *printitem.Doc, nodeStmt *ast.NodeStmt) {
	d.NewLine()
	p.layoutNodeID(d, nodeStmt.NodeID)
	p.layoutAttrList(d, nodeStmt.AttrList)
}

func (p *Printer) layoutNodeID(d *printitem.Doc, nodeID ast.NodeID) {
	p.layoutID(d, nodeID.ID)

	if nodeID.Port == nil {
		return
	}

	if nodeID.Port.Name != nil {
		d.String(token.Colon.String())
		p.layoutID(d, *nodeID.Port.Name)
	}
	if cp := nodeID.Port.CompassPoint; cp != nil && cp.Type != ast.CompassPointUnderscore {
		d.String(token.Colon.String())
		d.String(cp.String())
	}
}

// layoutAttrList prints every bracketed attribute list following a node, edge, or attr statement.
// Each bracket pair decides independently whether it fits on one line: one may stay flat while a
// later, longer one breaks.
func (p *Printer) layoutAttrList(d *printitem.Doc, attrList *ast.AttrList) {
	if attrList == nil {
		return
	}

	d.String(" ")
	for cur := attrList; cur != nil; cur = cur.Next {
		p.layoutOneAttrList(d, cur.AList)
		if cur.Next != nil {
			d.String(" ")
		}
	}
}

func (p *Printer) layoutOneAttrList(d *printitem.Doc, alist *ast.AList) {
	d.String(token.LeftBracket.String())
	d.MeasuredGroup(func(d *printitem.Doc) {
		d.Indent(func(d *printitem.Doc) {
			d.SoftLine()
			for cur := alist; cur != nil; cur = cur.Next {
				p.layoutAttribute(d, cur.Attribute)
				if cur.Next != nil {
					d.TextOrNewLine(token.Comma.String())
				}
			}
		})
		d.SoftLine()
	})
	d.String(token.RightBracket.String())
}

func (p *Printer) layoutEdgeStmt(d *printitem.Doc, edgeStmt *ast.EdgeStmt) {
	d.NewLine()

	p.layoutEdgeOperand(d, edgeStmt.Left)
	for cur := &edgeStmt.Right; cur != nil; cur = cur.Next {
		d.String(" ")
		if cur.Directed {
			d.String(token.DirectedEdge.String())
		} else {
			d.String(token.UndirectedEdge.String())
		}
		d.String(" ")
		p.layoutEdgeOperand(d, cur.Right)
	}
	p.layoutAttrList(d, edgeStmt.AttrList)
}

func (p *Printer) layoutEdgeOperand(d *printitem.Doc, edgeOperand ast.EdgeOperand) {
	switch op := edgeOperand.(type) {
	case ast.NodeID:
		p.layoutNodeID(d, op)
	case ast.Subgraph:
		p.layoutSubgraph(d, op)
	}
}

func (p *Printer) layoutAttrStmt(d *printitem.Doc, attrStmt *ast.AttrStmt) {
	d.NewLine()
	p.layoutID(d, attrStmt.ID)
	p.layoutAttrList(d, &attrStmt.AttrList)
}

func (p *Printer) layoutAttribute(d *printitem.Doc, attribute ast.Attribute) {
	p.layoutID(d, attribute.Name)
	d.String(token.Equal.String())
	p.layoutID(d, attribute.Value)
}

func (p *Printer) layoutSubgraph(d *printitem.Doc, subgraph ast.Subgraph) {
	if subgraph.SubgraphStart != nil {
		d.String(token.Subgraph.String()).String(" ")
	}
	if subgraph.ID != nil {
		p.layoutID(d, *subgraph.ID)
		d.String(" ")
	}

	d.String(token.LeftBrace.String())
	d.Indent(func(d *printitem.Doc) {
		p.layoutStmts(d, subgraph.Stmts)
	})
	d.NewLine().String(token.RightBrace.String())
}
