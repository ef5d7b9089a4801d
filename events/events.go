// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the platform events consumed by the
// window host, and a queue for delivering them in order.
package events

import (
	"fmt"
	"image"
)

// Types are the types of platform events. Anything the platform
// reports that is not one of these is delivered as UnknownType
// and ignored by the host.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// WindowClose happens when the user asks to close the window.
	WindowClose

	// WindowResize happens when the window has been resized,
	// with the new physical pixel size in [Event.Size].
	WindowResize

	// ScaleChange happens when the scale factor of the window changes,
	// for example when it moves to a screen with a different DPI.
	// The new physical pixel size is in [Event.Size].
	ScaleChange

	// WindowPaint is sent when the window should be redrawn.
	WindowPaint

	// EventsDrained is sent when there are no more pending platform
	// events for the current tick of the event loop.
	EventsDrained

	typesN
)

var typeNames = [...]string{
	UnknownType:   "UnknownType",
	WindowClose:   "WindowClose",
	WindowResize:  "WindowResize",
	ScaleChange:   "ScaleChange",
	WindowPaint:   "WindowPaint",
	EventsDrained: "EventsDrained",
}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || tp >= typesN {
		return fmt.Sprintf("Types(%d)", int32(tp))
	}
	return typeNames[tp]
}

// TypesValues returns all possible values of [Types].
func TypesValues() []Types {
	return []Types{UnknownType, WindowClose, WindowResize, ScaleChange, WindowPaint, EventsDrained}
}

// Event is a platform event.
type Event struct {
	// Type is the type of the event.
	Type Types

	// Size is the new physical pixel size for
	// [WindowResize] and [ScaleChange] events.
	Size image.Point
}

// NewResize returns a new [WindowResize] event for the given size.
func NewResize(size image.Point) Event {
	return Event{Type: WindowResize, Size: size}
}

// NewScaleChange returns a new [ScaleChange] event for the given size.
func NewScaleChange(size image.Point) Event {
	return Event{Type: ScaleChange, Size: size}
}

// NewEvent returns a new event of the given type with no size.
func NewEvent(tp Types) Event {
	return Event{Type: tp}
}

func (ev Event) String() string {
	switch ev.Type {
	case WindowResize, ScaleChange:
		return fmt.Sprintf("%v%v", ev.Type, ev.Size)
	}
	return ev.Type.String()
}

// Source is a source of platform events.
type Source interface {
	// Next returns the next event, blocking as needed to get one.
	// It returns false when the source has no more events.
	Next() (Event, bool)
}
