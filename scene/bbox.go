// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/meshview/math32"

// UnitBox is the bounding box of a scene without any vertices.
var UnitBox = math32.B3(0, 0, 0, 1, 1, 1)

// BBox returns the bounding box of every vertex of every entry of
// the given scene, including entries that are not activated.
// It returns [UnitBox] if there are no vertices. The result is not
// cached: call it again after a [BBoxChanged] notification.
func BBox(sc *Scene) math32.Box3 {
	bb := math32.B3Empty()
	for _, e := range sc.entries {
		if e.Mesh == nil {
			continue
		}
		bb.ExpandByPoints(e.Mesh.Vertices)
	}
	if bb.IsEmpty() {
		return UnitBox
	}
	return bb
}

// BBox returns the bounding box of the scene; see [BBox].
func (sc *Scene) BBox() math32.Box3 {
	return BBox(sc)
}
