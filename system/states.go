// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "strconv"

// States are the lifecycle states of a [Host].
type States int32

const (
	// Uninitialized is the state before a renderer has been
	// attached with [Host.Ready]. All events are ignored.
	Uninitialized States = iota

	// Ready is the normal running state, in which events are handled
	// and frames are rendered.
	Ready

	// Closing means the window has been asked to close, or a frame
	// failed fatally. [Host.Run] terminates when it sees it.
	Closing

	// Terminated means the renderer has been released and the
	// event loop has returned.
	Terminated

	statesN
)

var stateNames = [...]string{
	Uninitialized: "Uninitialized",
	Ready:         "Ready",
	Closing:       "Closing",
	Terminated:    "Terminated",
}

// String returns the name of the state.
func (s States) String() string {
	if s < 0 || s >= statesN {
		return "States(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}

// StatesValues returns all possible values of [States].
func StatesValues() []States {
	return []States{Uninitialized, Ready, Closing, Terminated}
}
