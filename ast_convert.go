package dot

import (
	"github.com/dsherret/dprint/ast"
	"github.com/dsherret/dprint/token"
)

// treeToGraph projects a [KindGraph] tree into an [ast.Graph]. It assumes tree was produced by
// [Parser.parseGraph] on syntactically valid input; children belonging to error recovery
// ([KindErrorTree]) are skipped.
func treeToGraph(tree *Tree) ast.Graph {
	var graph ast.Graph

	for _, child := range tree.Children {
		switch c := child.(type) {
		case TokenChild:
			switch c.Type {
			case token.Strict:
				start := c.Start
				graph.StrictStart = &start
			case token.Graph:
				graph.GraphStart = c.Start
				graph.Directed = false
			case token.Digraph:
				graph.GraphStart = c.Start
				graph.Directed = true
			case token.LeftBrace:
				graph.LeftBrace = c.Start
			case token.RightBrace:
				graph.RightBrace = c.Start
			}
		case TreeChild:
			switch c.Type {
			case KindID:
				id := treeToID(c.Tree)
				graph.ID = &id
			case KindStmtList:
				graph.Stmts = treeToStmts(c.Tree)
			}
		}
	}

	return graph
}

// treeToStmts projects a [KindStmtList] tree's children into a slice of [ast.Stmt].
func treeToStmts(tree *Tree) []ast.Stmt {
	var stmts []ast.Stmt
	for _, child := range tree.Children {
		tc, ok := child.(TreeChild)
		if !ok {
			continue
		}

		switch tc.Type {
		case KindNodeStmt:
			stmts = append(stmts, treeToNodeStmt(tc.Tree))
		case KindEdgeStmt:
			stmts = append(stmts, treeToEdgeStmt(tc.Tree))
		case KindAttrStmt:
			stmts = append(stmts, treeToAttrStmt(tc.Tree))
		case KindAttribute:
			stmts = append(stmts, treeToAttribute(tc.Tree))
		case KindSubgraph:
			stmts = append(stmts, treeToSubgraph(tc.Tree))
		}
	}
	return stmts
}

// treeToNodeStmt projects a [KindNodeStmt] tree into an [ast.NodeStmt].
func treeToNodeStmt(tree *Tree) *ast.NodeStmt {
	ns := &ast.NodeStmt{}
	for _, child := range tree.Children {
		tc, ok := child.(TreeChild)
		if !ok {
			continue
		}
		switch tc.Type {
		case KindNodeID:
			ns.NodeID = treeToNodeID(tc.Tree)
		case KindAttrList:
			al := treeToAttrList(tc.Tree)
			ns.AttrList = al
		}
	}
	return ns
}

// treeToNodeID projects a [KindNodeID] tree into an [ast.NodeID].
func treeToNodeID(tree *Tree) ast.NodeID {
	var ni ast.NodeID
	for _, child := range tree.Children {
		tc, ok := child.(TreeChild)
		if !ok {
			continue
		}
		switch tc.Type {
		case KindID:
			ni.ID = treeToID(tc.Tree)
		case KindPort:
			port := treeToPort(tc.Tree)
			ni.Port = &port
		}
	}
	return ni
}

// treeToPort projects a [KindPort] tree into an [ast.Port]. The grammar guarantees at most two
// [KindID]/[KindCompassPoint] children: the first is the port name unless it was reclassified as
// a compass point by the parser, the second, if present, is always a compass point.
func treeToPort(tree *Tree) ast.Port {
	var port ast.Port
	var seenFirst bool
	for _, child := range tree.Children {
		tc, ok := child.(TreeChild)
		if !ok {
			continue
		}

		switch tc.Type {
		case KindID:
			id := treeToID(tc.Tree)
			if !seenFirst {
				port.Name = &id
				seenFirst = true
			}
		case KindCompassPoint:
			cp := treeToCompassPoint(tc.Tree)
			port.CompassPoint = &cp
			seenFirst = true
		}
	}
	return port
}

// treeToID projects a [KindID] tree, which wraps a single identifier token, into an [ast.ID].
func treeToID(tree *Tree) ast.ID {
	for _, child := range tree.Children {
		if tc, ok := child.(TokenChild); ok {
			return ast.ID{Literal: tc.Literal, StartPos: tc.Start, EndPos: tc.End}
		}
	}
	return ast.ID{}
}

// treeToCompassPoint projects a [KindCompassPoint] tree, which wraps a single identifier token
// holding the compass point literal, into an [ast.CompassPoint].
func treeToCompassPoint(tree *Tree) ast.CompassPoint {
	for _, child := range tree.Children {
		if tc, ok := child.(TokenChild); ok {
			cpType, _ := ast.IsCompassPoint(tc.Literal)
			return ast.CompassPoint{Type: cpType, StartPos: tc.Start, EndPos: tc.End}
		}
	}
	return ast.CompassPoint{}
}

// treeToAttrList projects a [KindAttrList] tree into a linked list of [ast.AttrList]. A single
// tree holds every bracket pair the parser saw in sequence ('[' [a_list] ']' repeated); each
// bracket pair becomes one [ast.AttrList] node chained via Next.
func treeToAttrList(tree *Tree) *ast.AttrList {
	var head, tail *ast.AttrList
	var cur *ast.AttrList

	for _, child := range tree.Children {
		switch c := child.(type) {
		case TokenChild:
			switch c.Type {
			case token.LeftBracket:
				cur = &ast.AttrList{LeftBracket: c.Start}
			case token.RightBracket:
				if cur == nil {
					continue
				}
				cur.RightBracket = c.Start
				if head == nil {
					head = cur
				} else {
					tail.Next = cur
				}
				tail = cur
				cur = nil
			}
		case TreeChild:
			if c.Type == KindAList && cur != nil {
				cur.AList = treeToAList(c.Tree)
			}
		}
	}

	return head
}

// treeToAList projects a [KindAList] tree into a linked list of [ast.AList], one node per
// [KindAttribute] child; separator tokens (';' or ',') are not represented in the AST.
func treeToAList(tree *Tree) *ast.AList {
	var head, tail *ast.AList

	for _, child := range tree.Children {
		tc, ok := child.(TreeChild)
		if !ok || tc.Type != KindAttribute {
			continue
		}

		node := &ast.AList{Attribute: treeToAttribute(tc.Tree)}
		if head == nil {
			head = node
		} else {
			tail.Next = node
		}
		tail = node
	}

	return head
}

// treeToAttribute projects a [KindAttribute] tree into an [ast.Attribute].
func treeToAttribute(tree *Tree) ast.Attribute {
	var attr ast.Attribute
	var seenName bool
	for _, child := range tree.Children {
		tc, ok := child.(TreeChild)
		if !ok || tc.Type != KindID {
			continue
		}
		if !seenName {
			attr.Name = treeToID(tc.Tree)
			seenName = true
		} else {
			attr.Value = treeToID(tc.Tree)
		}
	}
	return attr
}

// treeToAttrStmt projects a [KindAttrStmt] tree into an [ast.AttrStmt].
func treeToAttrStmt(tree *Tree) *ast.AttrStmt {
	as := &ast.AttrStmt{}
	for _, child := range tree.Children {
		switch c := child.(type) {
		case TokenChild:
			if c.IsKeyword() {
				as.ID = ast.ID{Literal: c.Literal, StartPos: c.Start, EndPos: c.End}
			}
		case TreeChild:
			if c.Type == KindAttrList {
				if al := treeToAttrList(c.Tree); al != nil {
					as.AttrList = *al
				}
			}
		}
	}
	return as
}

// treeToEdgeStmt projects a [KindEdgeStmt] tree into an [ast.EdgeStmt]. The tree holds the left
// operand followed by one or more (edge operator token, operand) pairs and an optional trailing
// attribute list.
func treeToEdgeStmt(tree *Tree) *ast.EdgeStmt {
	es := &ast.EdgeStmt{}

	var haveLeft bool
	var pendingDirected bool
	var pendingPos token.Position
	var havePending bool
	var rhsTail *ast.EdgeRHS

	appendRHS := func(operand ast.EdgeOperand) {
		node := &ast.EdgeRHS{StartPos: pendingPos, Directed: pendingDirected, Right: operand}
		if rhsTail == nil {
			es.Right = *node
			rhsTail = &es.Right
		} else {
			rhsTail.Next = node
			rhsTail = node
		}
		havePending = false
	}

	for _, child := range tree.Children {
		switch c := child.(type) {
		case TokenChild:
			switch c.Type {
			case token.DirectedEdge:
				pendingDirected = true
				pendingPos = c.Start
				havePending = true
			case token.UndirectedEdge:
				pendingDirected = false
				pendingPos = c.Start
				havePending = true
			}
		case TreeChild:
			switch c.Type {
			case KindNodeID:
				operand := treeToNodeID(c.Tree)
				if !haveLeft {
					es.Left = operand
					haveLeft = true
				} else if havePending {
					appendRHS(operand)
				}
			case KindSubgraph:
				operand := treeToSubgraph(c.Tree)
				if !haveLeft {
					es.Left = operand
					haveLeft = true
				} else if havePending {
					appendRHS(operand)
				}
			case KindAttrList:
				if al := treeToAttrList(c.Tree); al != nil {
					es.AttrList = al
				}
			}
		}
	}

	return es
}

// treeToSubgraph projects a [KindSubgraph] tree into an [ast.Subgraph].
func treeToSubgraph(tree *Tree) ast.Subgraph {
	var sg ast.Subgraph
	for _, child := range tree.Children {
		switch c := child.(type) {
		case TokenChild:
			switch c.Type {
			case token.Subgraph:
				start := c.Start
				sg.SubgraphStart = &start
			case token.LeftBrace:
				sg.LeftBrace = c.Start
			case token.RightBrace:
				sg.RightBrace = c.Start
			}
		case TreeChild:
			switch c.Type {
			case KindID:
				id := treeToID(c.Tree)
				sg.ID = &id
			case KindStmtList:
				sg.Stmts = treeToStmts(c.Tree)
			}
		}
	}
	return sg
}
