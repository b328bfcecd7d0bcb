// Package mercator implements the spherical-mercator Projector: a
// bijective map between geographic longitude/latitude and the planar
// coordinate space the rest of the pipeline operates in. It uses a sphere
// of radius 6,378,137 m (the WGS84 semi-major axis) with no datum shift,
// matching the tile-server convention rather than true ellipsoidal
// Web Mercator.
//
// The package exposes one process-wide immutable value, Default, built
// once at init time; callers needing a different reference sphere can
// construct their own Projector with New.
package mercator
