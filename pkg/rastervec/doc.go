// Package rastervec converts raster (gridded) geospatial data into vector
// geometries.
//
// The package covers the classic raster-to-vector operations:
//
//   - ContourLines / ContourBands: iso-lines and filled iso-bands from a
//     gridded field
//   - ClassifyRegions: polygons from a color-classified image
//   - TraceCenterlines: centerline paths from a binary mask, via
//     skeletonization
//   - MergeLines / UnionPolygons: joining line fragments and dissolving
//     polygons
//
// Results come back as a Layer of features with orb geometries, georeferenced
// through a six-parameter affine GeoTransform. Layers can be projected
// (orb/project), simplified (orb/simplify), and exported as GeoJSON or SVG.
//
// Example:
//
//	grid, err := rastervec.ReadEsriASCII(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layer, err := rastervec.ContourLines(grid, []float64{100, 200, 300})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := layer.MarshalGeoJSON()
//	os.Stdout.Write(data)
package rastervec
