// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h3

// Vertex indexes are H3Index values in the 64-bit word's VERTEX-mode
// interpretation (spec.md S:3 "Vertex index"): a vertex number plus
// the owner cell. Ported from original_source's vertex.c (vertexToPoint,
// isValidVertex, vertexRotations) and extended with the direction<->
// vertex-number mapping that file declares (vertex.h) but does not
// define in the retrieved source, using the CCW-from-i-axis ordering
// spec.md S:4.2 specifies for vertex offset tables.

// vertexDirectionOrder lists the 6 non-center directions in CCW order
// starting at the i-axis; index i is vertex number i for a hexagon.
var vertexDirectionOrder = [NUM_HEX_VERTS]Direction{
	I_AXES_DIGIT, IJ_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, K_AXES_DIGIT, IK_AXES_DIGIT,
}

// vertexRotations returns the number of CCW 60-degree rotations of a
// cell's vertex numbers relative to the directional layout of its
// neighbors. Ported from original_source's vertex.c:vertexRotations.
func vertexRotations(cell H3Index) int {
	var fijk FaceIJK
	_h3ToFaceIjk(cell, &fijk)
	baseCell := H3_GET_BASE_CELL(cell)
	cellLeadingDigit := _h3LeadingNonZeroDigit(cell)

	var baseFijk FaceIJK
	_baseCellToFaceIjk(baseCell, &baseFijk)

	ccwRot60 := _faceIjkToBaseCellCCWrot60(&fijk)
	if ccwRot60 == INVALID_ROTATIONS {
		ccwRot60 = 0
	}

	if _isBaseCellPentagon(baseCell) {
		dirFaces, ok := pentagonDirectionFacesFor(baseCell)
		if ok {
			ikFace := dirFaces.faces[int(IK_AXES_DIGIT)-DIRECTION_INDEX_OFFSET]
			jkFace := dirFaces.faces[int(JK_AXES_DIGIT)-DIRECTION_INDEX_OFFSET]

			if fijk.face != baseFijk.face &&
				(_isBaseCellPolarPentagon(baseCell) || fijk.face == ikFace) {
				ccwRot60 = (ccwRot60 + 1) % 6
			}

			if cellLeadingDigit == JK_AXES_DIGIT && fijk.face == ikFace {
				// Crosses from JK to IK: rotate CW.
				ccwRot60 = (ccwRot60 + 5) % 6
			} else if cellLeadingDigit == IK_AXES_DIGIT && fijk.face == jkFace {
				// Crosses from IK to JK: rotate CCW.
				ccwRot60 = (ccwRot60 + 1) % 6
			}
		}
	}
	return ccwRot60
}

// vertexNumForDirection returns the vertex number (0..5, or 0..4 for a
// pentagon) shared between origin and its neighbor in the given
// direction, or INVALID_VERTEX_NUM if direction has no vertex (the
// CENTER digit, or the K digit on a pentagon).
func vertexNumForDirection(origin H3Index, direction int) int {
	if Direction(direction) == CENTER_DIGIT || Direction(direction) == INVALID_DIGIT {
		return INVALID_VERTEX_NUM
	}

	isPentagon := H3IsPentagon(origin)
	if isPentagon && Direction(direction) == K_AXES_DIGIT {
		return INVALID_VERTEX_NUM
	}

	idx := -1
	for i, d := range vertexDirectionOrder {
		if int(d) == direction {
			idx = i
			break
		}
	}
	if idx < 0 {
		return INVALID_VERTEX_NUM
	}

	numVerts := NUM_HEX_VERTS
	if isPentagon {
		// Pentagons delete the K direction (index 4 above); shift the
		// direction after it down so the remaining five fill a
		// contiguous 0..4 range.
		if idx > 4 {
			idx--
		}
		numVerts = NUM_PENT_VERTS
	}

	rot := vertexRotations(origin)
	v := (idx - rot) % numVerts
	if v < 0 {
		v += numVerts
	}
	return v
}

// directionForVertexNum is the inverse of vertexNumForDirection.
func directionForVertexNum(origin H3Index, vertexNum int) Direction {
	isPentagon := H3IsPentagon(origin)
	numVerts := NUM_HEX_VERTS
	if isPentagon {
		numVerts = NUM_PENT_VERTS
	}
	if vertexNum < 0 || vertexNum >= numVerts {
		return INVALID_DIGIT
	}

	rot := vertexRotations(origin)
	idx := (vertexNum + rot) % numVerts
	if isPentagon && idx >= 4 {
		idx++ // undo the K-direction compaction applied in vertexNumForDirection
	}
	if idx < 0 || idx >= NUM_HEX_VERTS {
		return INVALID_DIGIT
	}
	return vertexDirectionOrder[idx]
}

// CellToVertex returns a vertex index for the vertexNum-th vertex of
// origin: origin's bits in vertex mode with vertexNum in the reserved
// bits. The index is not canonicalized to a single owner cell, so a
// vertex shared by two or three cells gets a different index from each.
func CellToVertex(origin H3Index, vertexNum int) H3Index {
	v := origin
	H3_SET_MODE(&v, H3_VERTEX_MODE)
	H3_SET_RESERVED_BITS(&v, vertexNum)
	return v
}

// VertexToPoint returns the geographic coordinate of a vertex index.
// Ported from original_source's vertex.c:vertexToPoint.
func VertexToPoint(vertex H3Index, coord *GeoCoord) {
	vertexNum := H3_GET_RESERVED_BITS(vertex)
	owner := vertex
	H3_SET_MODE(&owner, H3_HEXAGON_MODE)
	H3_SET_RESERVED_BITS(&owner, 0)

	var fijk FaceIJK
	_h3ToFaceIjk(owner, &fijk)
	res := H3_GET_RESOLUTION(owner)

	var gb GeoBoundary
	if H3IsPentagon(owner) {
		_faceIjkPentToGeoBoundary(&fijk, res, vertexNum, 1, &gb)
	} else {
		_faceIjkToGeoBoundary(&fijk, res, vertexNum, 1, &gb)
	}
	*coord = gb.verts[0]
}

// IsValidVertex reports whether vertex is in vertex mode and names a
// valid owner cell; whether the owner is the canonical one among the
// cells sharing the vertex is not checked. Ported from original_source's vertex.c:isValidVertex.
func IsValidVertex(vertex H3Index) bool {
	if H3_GET_MODE(vertex) != H3_VERTEX_MODE {
		return false
	}

	vertexNum := H3_GET_RESERVED_BITS(vertex)
	owner := vertex
	H3_SET_MODE(&owner, H3_HEXAGON_MODE)
	H3_SET_RESERVED_BITS(&owner, 0)

	if !H3IsValid(owner) {
		return false
	}

	return vertex == CellToVertex(owner, vertexNum)
}
