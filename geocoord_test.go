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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSanFranciscoChildren reproduces spec.md's San Francisco scenario:
// a resolution-8 cell expanded one level down must have exactly 7
// distinct children, each centered inside the parent's boundary.
func TestSanFranciscoChildren(t *testing.T) {
	sf := GeoCoord{lat: 0.659966917655, lon: -2.1364398519396 + M_2PI}
	h8 := GeoToH3(&sf, 8)
	require.True(t, H3IsValid(h8))

	children := make([]H3Index, 0, MaxH3ToChildrenSize(h8, 9))
	H3ToChildren(h8, 9, &children)
	require.Len(t, children, 7)

	seen := make(map[H3Index]bool, len(children))
	for _, c := range children {
		assert.False(t, seen[c], "children must be distinct")
		seen[c] = true

		var center GeoCoord
		H3ToGeo(c, &center)

		var boundary GeoBoundary
		H3ToGeoBoundary(h8, &boundary)
		assert.True(t, pointRoughlyInBoundary(&center, &boundary),
			"child center must lie inside the parent boundary")
	}
}

// pointRoughlyInBoundary does an even-odd ray cast against the
// boundary's vertex loop; sufficient for the containment check the
// San Francisco scenario needs without pulling in a full geodesic
// point-in-polygon library.
func pointRoughlyInBoundary(p *GeoCoord, gb *GeoBoundary) bool {
	inside := false
	n := gb.numVerts
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := gb.verts[i], gb.verts[j]
		if (vi.lat > p.lat) != (vj.lat > p.lat) {
			slope := (p.lat - vi.lat) / (vj.lat - vi.lat)
			xCross := vi.lon + slope*(vj.lon-vi.lon)
			if p.lon < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// TestClassIIIAgreement checks spec.md's resolution-parity invariant
// across every valid resolution.
func TestClassIIIAgreement(t *testing.T) {
	origin := GeoCoord{lat: 0, lon: 0}
	for res := 0; res <= MAX_H3_RES; res++ {
		cell := GeoToH3(&origin, res)
		require.True(t, H3IsValid(cell))
		assert.Equal(t, res%2 == 1, H3IsResClassIII(cell))
	}
}

func TestEpsilonRadMatchesPublishedValue(t *testing.T) {
	assert.InDelta(t, 1.7453292519943295e-11, EPSILON_RAD, 1e-25)
	assert.True(t, math.Abs(M_SQRT7-2.6457513110645905905016157536392604257102) < 1e-15)
}
