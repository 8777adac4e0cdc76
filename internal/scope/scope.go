// Package scope models the lexical lookup environments of a Forge program.
// Scopes are not embedded in AST nodes; the symbol-resolution handler builds
// a scope chain alongside its traversal, keyed by the scope-carrier node.
package scope

import (
	"github.com/forge-lang/forge/internal/ast"
)

// Flags describe how a scope resolves names.
type Flags struct {
	// Unordered makes every declaration visible throughout the scope, so
	// forward references work. Ordered scopes (blocks) only expose
	// declarations textually before the use.
	Unordered bool
	// AllowShadowing permits declaring a name that an enclosing scope
	// already binds. Blocks and function bodies shadow; type and namespace
	// bodies do not.
	AllowShadowing bool
}

// Scope is one lookup environment attached to a carrier node.
type Scope struct {
	carrier ast.Node
	parent  *Scope
	flags   Flags
	names   map[string]ast.Declaration
}

// New builds a scope for a carrier node nested inside parent (nil for the
// root scope).
func New(carrier ast.Node, parent *Scope, flags Flags) *Scope {
	return &Scope{
		carrier: carrier,
		parent:  parent,
		flags:   flags,
		names:   make(map[string]ast.Declaration),
	}
}

// Carrier returns the node this scope is attached to.
func (s *Scope) Carrier() ast.Node {
	return s.carrier
}

// Parent returns the enclosing scope, or nil at the root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Flags returns the scope's resolution flags.
func (s *Scope) Flags() Flags {
	return s.flags
}

// Declare binds name to decl in this scope. It returns the previous
// declaration and false when the name collides: a duplicate in the same
// scope, or a shadowing of an enclosing scope where shadowing is not
// allowed.
func (s *Scope) Declare(name string, decl ast.Declaration) (ast.Declaration, bool) {
	if existing, ok := s.names[name]; ok {
		return existing, false
	}
	if !s.flags.AllowShadowing {
		if existing := s.lookupAncestors(name); existing != nil {
			return existing, false
		}
	}
	s.names[name] = decl
	return nil, true
}

// Lookup walks the scope chain from this scope outward and returns the first
// declaration bound to name, or nil.
func (s *Scope) Lookup(name string) ast.Declaration {
	for current := s; current != nil; current = current.parent {
		if decl, ok := current.names[name]; ok {
			return decl
		}
	}
	return nil
}

// LookupLocal returns the declaration bound to name in this scope only.
func (s *Scope) LookupLocal(name string) ast.Declaration {
	return s.names[name]
}

func (s *Scope) lookupAncestors(name string) ast.Declaration {
	if s.parent == nil {
		return nil
	}
	return s.parent.Lookup(name)
}
