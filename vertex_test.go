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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVertexToPointMatchesBoundary checks spec.md's vertex invariant:
// vertexToPoint(cellToVertex(c,v)) must agree with the v-th vertex of
// h3ToGeoBoundary(c).
func TestVertexToPointMatchesBoundary(t *testing.T) {
	origin := H3_INIT
	H3_SET_MODE(&origin, H3_HEXAGON_MODE)
	H3_SET_BASE_CELL(&origin, 15)
	H3_SET_RESOLUTION(&origin, 4)
	for r := 1; r <= 4; r++ {
		H3_SET_INDEX_DIGIT(&origin, r, CENTER_DIGIT)
	}
	require.True(t, H3IsValid(origin))

	var boundary GeoBoundary
	H3ToGeoBoundary(origin, &boundary)

	for v := 0; v < boundary.numVerts; v++ {
		vertex := CellToVertex(origin, v)
		require.True(t, IsValidVertex(vertex))

		var got GeoCoord
		VertexToPoint(vertex, &got)

		want := boundary.verts[v]
		assert.InDelta(t, want.lat, got.lat, 1e-6)
		assert.InDelta(t, want.lon, got.lon, 1e-6)
	}
}
