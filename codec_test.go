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

func TestStringRoundTrip(t *testing.T) {
	assert.Equal(t, H3Index(0x8928308280fffff), StringToH3("8928308280fffff"))
	assert.Equal(t, "cafe", H3ToString(0xcafe))
}

func TestReservedBitsValidity(t *testing.T) {
	build := func(reserved int) H3Index {
		h := H3_INIT
		H3_SET_MODE(&h, H3_HEXAGON_MODE)
		H3_SET_RESOLUTION(&h, 5)
		H3_SET_RESERVED_BITS(&h, reserved)
		for r := 1; r <= 5; r++ {
			H3_SET_INDEX_DIGIT(&h, r, K_AXES_DIGIT)
		}
		return h
	}

	for i := 1; i <= 7; i++ {
		assert.Falsef(t, H3IsValid(build(i)), "reserved bits %d should be invalid", i)
	}
	assert.True(t, H3IsValid(build(0)))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for res := 0; res <= 5; res++ {
		var g GeoCoord
		g.setGeoDegs(37.5, -122.4)
		cell := GeoToH3(&g, res)
		require.True(t, H3IsValid(cell))

		var fijk FaceIJK
		_h3ToFaceIjk(cell, &fijk)
		assert.Equal(t, cell, _faceIjkToH3(&fijk, res))
	}
}

func TestParentChildRoundTrip(t *testing.T) {
	var g GeoCoord
	g.setGeoDegs(10, 10)
	cell := GeoToH3(&g, 6)
	require.True(t, H3IsValid(cell))

	parentRes := H3_GET_RESOLUTION(cell) - 1
	parent := H3ToParent(cell, parentRes)

	children := make([]H3Index, 0, MaxH3ToChildrenSize(parent, parentRes+1))
	H3ToChildren(parent, parentRes+1, &children)

	found := false
	for _, c := range children {
		if c == cell {
			found = true
		}
		assert.Equal(t, parent, H3ToParent(c, parentRes))
	}
	assert.True(t, found, "original cell must appear among its parent's children")
}

func TestParentAtEveryResolution(t *testing.T) {
	var g GeoCoord
	g.setGeoDegs(45, 45)
	cell := GeoToH3(&g, 9)

	for r := 0; r <= 9; r++ {
		p := H3ToParent(cell, r)
		assert.Equal(t, r, H3_GET_RESOLUTION(p))
	}
	assert.Equal(t, cell, H3ToParent(cell, 9))
}
