// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueOrder(t *testing.T) {
	var q Queue
	q.Send(NewResize(image.Pt(800, 600)))
	q.Send(NewScaleChange(image.Pt(1600, 1200)))
	q.Send(NewEvent(EventsDrained))
	assert.Equal(t, 3, q.Len())

	want := []Types{WindowResize, ScaleChange, EventsDrained}
	for _, tp := range want {
		ev, ok := q.Next()
		assert.True(t, ok)
		assert.Equal(t, tp, ev.Type)
	}
	_, ok := q.Next()
	assert.False(t, ok)
}

func TestQueuePaintCoalesced(t *testing.T) {
	var q Queue
	q.Send(NewEvent(WindowPaint))
	q.Send(NewEvent(WindowPaint))
	q.Send(NewEvent(EventsDrained))
	q.Send(NewEvent(WindowPaint))
	assert.Equal(t, 2, q.Len())

	ev, _ := q.Next()
	assert.Equal(t, WindowPaint, ev.Type)
	q.Send(NewEvent(WindowPaint)) // allowed again once the first is consumed
	assert.Equal(t, 2, q.Len())

	q.Clear()
	assert.Equal(t, 0, q.Len())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "WindowPaint", WindowPaint.String())
	assert.Equal(t, "Types(99)", Types(99).String())
	assert.Equal(t, "WindowResize(800,600)", NewResize(image.Pt(800, 600)).String())
	assert.Equal(t, "WindowClose", NewEvent(WindowClose).String())
}
