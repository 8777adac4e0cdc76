package handlers

import (
	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/pass"
	"github.com/forge-lang/forge/internal/scope"
)

// SymbolResolutionHandler binds every ValueSymbol and TypeSymbol to the
// declaration it names, or emits a diagnostic.
//
// Scopes follow the traversal: entering a scope carrier pushes a scope,
// leaving it pops. Unordered carriers (translation unit, namespaces, type
// bodies, function parameter lists) declare all their members up front so
// forward references resolve; ordered scopes (blocks) declare each
// declaration as the traversal reaches it, so a use before its declaration
// fails to resolve.
type SymbolResolutionHandler struct {
	pass.NopHandler
	current *scope.Scope
}

func NewSymbolResolutionHandler() *SymbolResolutionHandler {
	return &SymbolResolutionHandler{}
}

var (
	unorderedFlags     = scope.Flags{Unordered: true}
	functionScopeFlags = scope.Flags{Unordered: true, AllowShadowing: true}
	blockScopeFlags    = scope.Flags{AllowShadowing: true}
)

func (h *SymbolResolutionHandler) OnEnter(in *pass.Input) pass.Output {
	switch node := in.Node.(type) {
	case *ast.TranslationUnit:
		h.push(node, unorderedFlags)
		for _, declaration := range node.Declarations {
			h.declare(in, declaration)
		}

	case *ast.DeclarationNamespace:
		h.push(node, unorderedFlags)
		for _, member := range node.Members {
			h.declare(in, member)
		}

	case *ast.DeclarationStructuredType:
		h.push(node, unorderedFlags)
		for _, member := range node.Members {
			h.declare(in, member)
		}

	case *ast.TypeStructured:
		h.push(node, unorderedFlags)
		for _, member := range node.Members {
			h.declare(in, member)
		}

	case *ast.DeclarationFunction:
		h.push(node, functionScopeFlags)
		for _, arg := range node.Args {
			if arg != nil {
				h.declare(in, arg)
			}
		}

	case *ast.StatementBlock:
		h.push(node, blockScopeFlags)

	case *ast.StatementDeclaration:
		// Block scopes are ordered: the declaration becomes visible only
		// once the traversal reaches it.
		if node.Declaration != nil {
			h.declare(in, node.Declaration)
		}

	case *ast.ValueSymbol:
		if isMemberAccessField(in, node) {
			// Fields resolve against the lhs type during type resolution,
			// not against the lexical scope.
			return pass.Continue()
		}
		declaration := h.lookup(node.Name)
		if declaration == nil {
			in.Messages.Error(node.Range(), diagnostics.ErrS0001, "undeclared symbol %q", node.Name)
			return pass.Continue()
		}
		node.ResolvedDecl = declaration

	case *ast.TypeSymbol:
		declaration := h.lookup(node.Name)
		if declaration == nil {
			in.Messages.Error(node.Range(), diagnostics.ErrS0001, "undeclared symbol %q", node.Name)
			return pass.Continue()
		}
		node.ResolvedDecl = declaration
	}

	return pass.Continue()
}

func (h *SymbolResolutionHandler) OnLeave(in *pass.Input) pass.Output {
	switch in.Node.(type) {
	case *ast.TranslationUnit, *ast.DeclarationNamespace, *ast.DeclarationStructuredType,
		*ast.TypeStructured, *ast.DeclarationFunction, *ast.StatementBlock:
		h.pop()
	}
	return pass.Continue()
}

func (h *SymbolResolutionHandler) push(carrier ast.Node, flags scope.Flags) {
	h.current = scope.New(carrier, h.current, flags)
}

func (h *SymbolResolutionHandler) pop() {
	if h.current != nil {
		h.current = h.current.Parent()
	}
}

func (h *SymbolResolutionHandler) declare(in *pass.Input, declaration ast.Declaration) {
	if h.current == nil || declaration == nil {
		return
	}
	name := declaration.DeclaredName()
	if name == "" {
		// Well-formedness validation reports empty names.
		return
	}
	if _, ok := h.current.Declare(name, declaration); !ok {
		in.Messages.Error(declaration.Range(), diagnostics.ErrS0002,
			"duplicate declaration of %q", name)
	}
}

func (h *SymbolResolutionHandler) lookup(name string) ast.Declaration {
	if h.current == nil {
		return nil
	}
	return h.current.Lookup(name)
}

// isMemberAccessField reports whether node is the rhs of a member access.
func isMemberAccessField(in *pass.Input, node *ast.ValueSymbol) bool {
	binary, ok := in.Parent().(*ast.ValueBinary)
	return ok && binary.Operator == ast.BinaryMemberAccess && binary.RHS == ast.Value(node)
}
