// Package spatialindex wraps rtreego.Rtree to give polygon fill an
// O(log n) bounding-box pre-filter over candidate cells instead of a
// linear scan, mirroring the indexedFeature/spatialIndex pattern used
// for chart feature lookup in the S-57 parsing example this package is
// grounded on.
package spatialindex

import "github.com/dhconnelly/rtreego"

// minDegreeSpan is the smallest lon/lat span given to rtreego for a
// point-like entry; the library rejects zero-area rectangles.
const minDegreeSpan = 1e-6

// Entry is one indexed cell: an opaque caller payload plus its
// point location in degrees (lon, lat).
type Entry struct {
	Value interface{}
	Lon   float64
	Lat   float64
}

func (e *Entry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.Lon, e.Lat}
	rect, _ := rtreego.NewRect(point, []float64{minDegreeSpan, minDegreeSpan})
	return rect
}

// Index is a bounding-box accelerated lookup over point-valued entries.
type Index struct {
	tree *rtreego.Rtree
}

// New builds an Index over entries. minChildren/maxChildren follow the
// same R-tree branching factors the example repo this is grounded on
// uses for its chart-feature index.
func New(entries []Entry, minChildren, maxChildren int) *Index {
	tree := rtreego.NewTree(2, minChildren, maxChildren)
	for i := range entries {
		tree.Insert(&entries[i])
	}
	return &Index{tree: tree}
}

// QueryBounds returns the values of every entry inside the axis-aligned
// box [minLon,maxLon] x [minLat,maxLat].
func (idx *Index) QueryBounds(minLon, minLat, maxLon, maxLat float64) []interface{} {
	if idx == nil || idx.tree == nil {
		return nil
	}
	lengths := []float64{maxLon - minLon, maxLat - minLat}
	if lengths[0] < minDegreeSpan {
		lengths[0] = minDegreeSpan
	}
	if lengths[1] < minDegreeSpan {
		lengths[1] = minDegreeSpan
	}
	rect, err := rtreego.NewRect(rtreego.Point{minLon, minLat}, lengths)
	if err != nil {
		return nil
	}

	results := idx.tree.SearchIntersect(rect)
	out := make([]interface{}, 0, len(results))
	for _, r := range results {
		out = append(out, r.(*Entry).Value)
	}
	return out
}
