// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Changes are the kinds of change notifications sent by a [Scene].
type Changes int32

const (
	// Updated means the scene needs to be redrawn.
	Updated Changes = iota

	// BBoxChanged means the set of meshes changed, so the
	// bounding box needs to be recomputed.
	BBoxChanged

	// Reset means entries were added or removed, so all
	// row indexes held by the receiver are invalid.
	Reset

	// RowChanged means the entry at [Change.Row] changed.
	RowChanged

	// AllChanged means every entry may have changed,
	// without rows being added or removed.
	AllChanged
)

func (c Changes) String() string {
	switch c {
	case Updated:
		return "Updated"
	case BBoxChanged:
		return "BBoxChanged"
	case Reset:
		return "Reset"
	case RowChanged:
		return "RowChanged"
	case AllChanged:
		return "AllChanged"
	}
	return "Changes(unknown)"
}

// Change is a change notification sent to listeners registered
// with [Scene.OnChange].
type Change struct {
	Kind Changes

	// Row is the entry index for [RowChanged], and -1 otherwise.
	Row int
}

// OnChange adds a function that is called for every change notification.
// Listeners are called synchronously, in the order they were added,
// after the scene state has been updated.
func (sc *Scene) OnChange(fun func(ch Change)) {
	sc.listeners = append(sc.listeners, fun)
}

func (sc *Scene) send(kind Changes, row int) {
	ch := Change{Kind: kind, Row: row}
	for _, fun := range sc.listeners {
		fun(ch)
	}
}

// structureChanged sends the notifications for entries
// being added or removed.
func (sc *Scene) structureChanged() {
	sc.send(BBoxChanged, -1)
	sc.send(Updated, -1)
	sc.send(Reset, -1)
}

// Changed sends a [RowChanged] notification for entry i,
// for use when the host changes the mesh of an entry in place.
func (sc *Scene) Changed(i int) {
	if !sc.valid(i) {
		return
	}
	sc.send(RowChanged, i)
}

// ChangedAll sends an [AllChanged] notification.
func (sc *Scene) ChangedAll() {
	if len(sc.entries) == 0 {
		return
	}
	sc.send(AllChanged, -1)
}
