// Package vfs implements the static, read-only document tree browsed from
// the terminal easter egg.
//
// The tree is built once at startup and never mutated. Directory children
// keep definition order; listings deliberately do not sort so the terminal
// output matches the authored layout.
package vfs

import (
	"github.com/mthorsen/folio/internal/domain"
)

// Node is a single entry in the tree: either a directory with ordered
// children or a file with text content.
type Node struct {
	name     string
	isFile   bool
	content  string
	children []*Node
}

// Dir constructs a directory node. The root of a tree is a Dir with an
// empty name.
func Dir(name string, children ...*Node) *Node {
	return &Node{name: name, children: children}
}

// File constructs a file node with immutable text content.
func File(name, content string) *Node {
	return &Node{name: name, isFile: true, content: content}
}

// Name returns the node's name. The root directory has no name.
func (n *Node) Name() string { return n.name }

// IsFile reports whether the node is a file.
func (n *Node) IsFile() bool { return n.isFile }

// Content returns a file's text content, or "" for directories.
func (n *Node) Content() string { return n.content }

// child returns the direct child with the given name, or nil.
func (n *Node) child(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Resolve walks the tree from root following each path segment. Every
// segment must name a directory; a file along the way counts as not found
// for navigation purposes. The empty path resolves to root.
func Resolve(root *Node, path []string) (*Node, error) {
	cur := root
	for _, seg := range path {
		next := cur.child(seg)
		if next == nil || next.isFile {
			return nil, domain.ErrNoSuchDirectory
		}
		cur = next
	}
	return cur, nil
}

// List returns display names for a directory's entries in definition
// order. Directories carry a trailing slash, files do not.
func List(dir *Node) []string {
	names := make([]string, 0, len(dir.children))
	for _, c := range dir.children {
		if c.isFile {
			names = append(names, c.name)
		} else {
			names = append(names, c.name+"/")
		}
	}
	return names
}

// ChangeDir applies a cd target to the cursor and returns the new cursor.
//
// An empty target or "/" resets to root. ".." pops one segment; popping
// past root is a no-op. Anything else descends into a child directory or
// fails with ErrNoSuchDirectory.
func ChangeDir(root *Node, cursor []string, target string) ([]string, error) {
	switch target {
	case "", "/":
		return nil, nil
	case "..":
		if len(cursor) == 0 {
			return nil, nil
		}
		parent := make([]string, len(cursor)-1)
		copy(parent, cursor[:len(cursor)-1])
		return parent, nil
	}

	next := append(append([]string{}, cursor...), target)
	if _, err := Resolve(root, next); err != nil {
		return nil, err
	}
	return next, nil
}

// ReadFile returns the content of the named file in the cursor directory.
func ReadFile(root *Node, cursor []string, name string) (string, error) {
	dir, err := Resolve(root, cursor)
	if err != nil {
		return "", err
	}

	node := dir.child(name)
	if node == nil {
		return "", domain.ErrNoSuchFile
	}
	if !node.isFile {
		return "", domain.ErrIsADirectory
	}
	return node.content, nil
}
