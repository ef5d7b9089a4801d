// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widget provides the widget tree that slate renders:
// a [View] owning a single [Root], whose children are drawn
// top to bottom in insertion order.
package widget

// Kinds are the kinds of widgets. Every [Widget] reports one of
// these from its Kind method, which is what the renderer switches on.
type Kinds int32

const (
	// KindRoot is a container of other widgets with no text of its own.
	KindRoot Kinds = iota

	// KindText is a plain text widget.
	KindText

	kindsN
)

var kindNames = [...]string{
	KindRoot: "Root",
	KindText: "Text",
}

// String returns the name of the kind.
func (k Kinds) String() string {
	if k < 0 || k >= kindsN {
		return "Kinds(unknown)"
	}
	return kindNames[k]
}

// KindsValues returns all possible values of [Kinds].
func KindsValues() []Kinds {
	return []Kinds{KindRoot, KindText}
}

// Widget is a node in the widget tree. The set of widgets is closed:
// only the types in this package implement it.
type Widget interface {
	// Kind returns the kind of the widget.
	Kind() Kinds

	// String returns the text of the widget, or a placeholder
	// for widgets that have no text.
	String() string

	base() *node
}

// node holds the state common to all widgets.
type node struct {
	// parent is the root that owns the widget, if any.
	parent *Root
}

func (n *node) base() *node { return n }

// RootPlaceholder is what [Root.String] returns.
const RootPlaceholder = "<root>"

// Root is the container at the top of a [View]. It owns its
// children, which are only ever appended.
type Root struct {
	node
	children []Widget
}

// NewRoot returns a new empty [Root].
func NewRoot() *Root {
	return &Root{}
}

func (r *Root) Kind() Kinds    { return KindRoot }
func (r *Root) String() string { return RootPlaceholder }

// AddChild appends the given widget to the end of the children
// and returns the root so that calls can be chained:
//
//	root.AddChild(widget.NewText("Hello")).AddChild(widget.NewText("World"))
//
// Each widget is owned by at most one root, so a nil widget, a widget
// that already has a root, and a root that is r itself or one of its
// ancestors are all ignored.
func (r *Root) AddChild(w Widget) *Root {
	if w == nil || w.base().parent != nil {
		return r
	}
	if wr, ok := w.(*Root); ok {
		for p := r; p != nil; p = p.parent {
			if p == wr {
				return r
			}
		}
	}
	w.base().parent = r
	r.children = append(r.children, w)
	return r
}

// Children returns the children in draw order. The returned slice
// must not be modified.
func (r *Root) Children() []Widget {
	return r.children
}

// NumChildren returns the number of children.
func (r *Root) NumChildren() int {
	return len(r.children)
}

// Text is a widget that displays a string.
type Text struct {
	node
	text string
}

// NewText returns a new [Text] widget showing the given string.
func NewText(text string) *Text {
	return &Text{text: text}
}

func (t *Text) Kind() Kinds    { return KindText }
func (t *Text) String() string { return t.text }

// Text returns the string shown by the widget.
func (t *Text) Text() string {
	return t.text
}

// View is the top-level holder of the widget tree for an app.
// It is built before the render loop starts and only read after that.
type View struct {
	root *Root
}

// NewView returns a new [View] with an empty [Root].
func NewView() *View {
	return &View{root: NewRoot()}
}

// Root returns the root of the view.
func (v *View) Root() *Root {
	return v.root
}

// Add appends the given widget to the root and returns the view
// so that calls can be chained.
func (v *View) Add(w Widget) *View {
	v.root.AddChild(w)
	return v
}
