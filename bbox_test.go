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
)

// TestBBoxScenario reproduces spec.md's literal bounding-box scenario:
// a geofence with the given 4 vertices yields the stated bbox, with
// one point inside and one outside.
func TestBBoxScenario(t *testing.T) {
	fence := Geofence{Verts: []GeoCoord{
		{lat: 0.8, lon: 0.3},
		{lat: 0.7, lon: 0.6},
		{lat: 1.1, lon: 0.7},
		{lat: 1.0, lon: 0.2},
	}}
	bbox := geofenceBBox(&fence)

	assert.InDelta(t, 1.1, bbox.north, 1e-9)
	assert.InDelta(t, 0.7, bbox.south, 1e-9)
	assert.InDelta(t, 0.7, bbox.east, 1e-9)
	assert.InDelta(t, 0.2, bbox.west, 1e-9)

	inside := GeoCoord{lat: 0.9, lon: 0.4}
	outside := GeoCoord{lat: 0.0, lon: 0.0}
	assert.True(t, bboxContains(&bbox, &inside))
	assert.False(t, bboxContains(&bbox, &outside))
}

// TestBBoxTransmeridian checks east/west wraparound handling for a
// geofence straddling the antimeridian.
func TestBBoxTransmeridian(t *testing.T) {
	bbox := BBox{north: 0.2, south: -0.2, east: -M_PI + 0.1, west: M_PI - 0.1}
	assert.True(t, bboxIsTransmeridian(&bbox))

	var center GeoCoord
	bboxCenter(&bbox, &center)
	assert.InDelta(t, M_PI, center.lon, 1e-6)

	onAntimeridianSide := GeoCoord{lat: 0, lon: M_PI - 0.05}
	assert.True(t, bboxContains(&bbox, &onAntimeridianSide))

	farSide := GeoCoord{lat: 0, lon: 0}
	assert.False(t, bboxContains(&bbox, &farSide))
}
