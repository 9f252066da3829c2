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
	"github.com/h3-geo/h3/internal/spatialindex"
)

// Geofence is a simple polygon loop: GeoCoord vertices in either
// winding order, implicitly closed (the last vertex connects back to
// the first). Polygon is one outer Geofence plus any number of holes.
// Ported in spirit from original_source's testapps polyfill driver,
// which takes a GeoJSON-shaped outer loop plus holes and floods
// resolution-res cells across it.
type Geofence struct {
	Verts []GeoCoord
}

// Polygon is an outer ring plus any number of interior holes.
type Polygon struct {
	Outer Geofence
	Holes []Geofence
}

// PolygonToCells returns every resolution-res cell whose center falls
// inside polygon (outer ring minus holes). The fill algorithm is a
// bounding-box-seeded k-ring flood fill with a point-in-polygon test
// at each candidate, the same two-stage shape the original testapps
// polyfill driver uses; the seed/candidate set is pre-filtered through
// an internal/spatialindex R-tree instead of a linear bbox scan, per
// the S-57-derived spatial index pattern.
func PolygonToCells(polygon *Polygon, res int) ([]H3Index, error) {
	if len(polygon.Outer.Verts) < 3 {
		return nil, ErrPolygonEmpty
	}

	bbox := geofenceBBox(&polygon.Outer)

	var center GeoCoord
	bboxCenter(&bbox, &center)

	seed := GeoToH3(&center, res)
	if seed == H3_NULL {
		return nil, ErrPolygonNoSeed
	}
	if !pointInPolygon(polygon, &center) {
		found, ok := findSeedInBBox(polygon, &bbox, res)
		if !ok {
			return nil, ErrPolygonNoSeed
		}
		seed = found
	}

	estimate := bboxHexEstimate(&bbox, res)
	k := 1
	for ; k < estimate+2; k++ {
		if k > 10000 {
			break
		}
		ring := KRing(seed, k)
		if ringFullyOutside(ring, &bbox) {
			break
		}
	}

	candidates := KRing(seed, k)
	entries := make([]spatialindex.Entry, 0, len(candidates))
	for _, c := range candidates {
		var g GeoCoord
		H3ToGeo(c, &g)
		entries = append(entries, spatialindex.Entry{
			Value: c,
			Lon:   RadsToDegs(g.lon),
			Lat:   RadsToDegs(g.lat),
		})
	}
	idx := spatialindex.New(entries, 4, 16)

	north, south := RadsToDegs(bbox.north), RadsToDegs(bbox.south)
	east, west := RadsToDegs(bbox.east), RadsToDegs(bbox.west)
	if bboxIsTransmeridian(&bbox) {
		west = -180
		east = 180
	}
	prefiltered := idx.QueryBounds(west, south, east, north)

	out := make([]H3Index, 0, len(prefiltered))
	for _, v := range prefiltered {
		cell := v.(H3Index)
		var g GeoCoord
		H3ToGeo(cell, &g)
		if pointInPolygon(polygon, &g) {
			out = append(out, cell)
		}
	}
	return out, nil
}

// geofenceBBox computes the geographic bounding box of a ring.
func geofenceBBox(fence *Geofence) BBox {
	var bbox BBox
	bbox.south = M_PI_2
	bbox.north = -M_PI_2
	bbox.west = M_2PI
	bbox.east = -M_2PI

	for _, v := range fence.Verts {
		if v.lat < bbox.south {
			bbox.south = v.lat
		}
		if v.lat > bbox.north {
			bbox.north = v.lat
		}
		if v.lon < bbox.west {
			bbox.west = v.lon
		}
		if v.lon > bbox.east {
			bbox.east = v.lon
		}
	}
	return bbox
}

// pointInPolygon reports whether point lies inside polygon's outer
// ring and outside every hole, via the standard ray-casting test.
func pointInPolygon(polygon *Polygon, point *GeoCoord) bool {
	if !ringContains(&polygon.Outer, point) {
		return false
	}
	for _, hole := range polygon.Holes {
		if ringContains(&hole, point) {
			return false
		}
	}
	return true
}

// ringContains implements even-odd ray casting over a closed ring.
func ringContains(fence *Geofence, point *GeoCoord) bool {
	verts := fence.Verts
	n := len(verts)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := verts[i], verts[j]
		if (vi.lat > point.lat) != (vj.lat > point.lat) {
			slope := (point.lat - vi.lat) / (vj.lat - vi.lat)
			xCross := vi.lon + slope*(vj.lon-vi.lon)
			if point.lon < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// findSeedInBBox falls back to scanning a resolution-res grid across
// the bounding box for any cell whose center is inside polygon, for
// the rare case where the bbox centroid itself lands outside the ring
// (e.g. a crescent-shaped polygon).
func findSeedInBBox(polygon *Polygon, bbox *BBox, res int) (H3Index, bool) {
	const steps = 16
	latStep := (bbox.north - bbox.south) / steps
	lonStep := (bbox.east - bbox.west) / steps
	if latStep == 0 || lonStep == 0 {
		return H3_NULL, false
	}

	for i := 0; i <= steps; i++ {
		for j := 0; j <= steps; j++ {
			g := GeoCoord{
				lat: bbox.south + float64(i)*latStep,
				lon: bbox.west + float64(j)*lonStep,
			}
			if pointInPolygon(polygon, &g) {
				return GeoToH3(&g, res), true
			}
		}
	}
	return H3_NULL, false
}

// ringFullyOutside reports whether the center of every cell in ring
// lies outside bbox, used as a flood-fill stopping check.
func ringFullyOutside(ring []H3Index, bbox *BBox) bool {
	for _, cell := range ring {
		var g GeoCoord
		H3ToGeo(cell, &g)
		if g.lat >= bbox.south && g.lat <= bbox.north &&
			g.lon >= bbox.west && g.lon <= bbox.east {
			return false
		}
	}
	return true
}
