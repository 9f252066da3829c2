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

// TestKRingMatchesNeighborCheck cross-checks H3IndexesAreNeighbors'
// fast path (shared-parent lookup table) against the k-ring based slow
// path, per spec.md S:8's neighbor invariant.
func TestKRingMatchesNeighborCheck(t *testing.T) {
	origin := H3_INIT
	H3_SET_MODE(&origin, H3_HEXAGON_MODE)
	H3_SET_BASE_CELL(&origin, 20)
	H3_SET_RESOLUTION(&origin, 2)
	for r := 1; r <= 2; r++ {
		H3_SET_INDEX_DIGIT(&origin, r, CENTER_DIGIT)
	}
	require.True(t, H3IsValid(origin))

	ring := KRing(origin, 1)
	require.Contains(t, ring, origin)

	for _, cell := range ring {
		if cell == origin {
			continue
		}
		assert.True(t, H3IndexesAreNeighbors(origin, cell),
			"every non-origin cell in KRing(origin,1) must be a neighbor")
	}
}

// TestUnidirectionalEdgeOriginDestination checks spec.md's edge
// round-trip invariant: getOrigin/getDestination recover the cells the
// edge was built from.
func TestUnidirectionalEdgeOriginDestination(t *testing.T) {
	origin := H3_INIT
	H3_SET_MODE(&origin, H3_HEXAGON_MODE)
	H3_SET_BASE_CELL(&origin, 30)
	H3_SET_RESOLUTION(&origin, 3)
	for r := 1; r <= 3; r++ {
		H3_SET_INDEX_DIGIT(&origin, r, CENTER_DIGIT)
	}
	require.True(t, H3IsValid(origin))

	ring := KRing(origin, 1)
	var destination H3Index
	for _, cell := range ring {
		if cell != origin {
			destination = cell
			break
		}
	}
	require.NotZero(t, destination)

	edge := GetH3UnidirectionalEdge(origin, destination)
	require.NotEqual(t, H3_NULL, edge)
	require.True(t, H3UnidirectionalEdgeIsValid(edge))

	assert.Equal(t, origin, GetOriginH3IndexFromUnidirectionalEdge(edge))
	assert.Equal(t, destination, GetDestinationH3IndexFromUnidirectionalEdge(edge))
}
