// Package collide answers "is this sphere free of obstacles?" against a
// static Chipmunk2D space, producing the spatial.WalkableFunc a grid is
// built from.
//
// World points are projected onto the grid plane: world X maps to cp X and
// world Z to cp Y; world Y (height) is ignored. Obstacles carry a Layer bit
// set and queries pass a Layer mask, so a grid can be built against any
// subset of obstacle layers (the "unwalkable mask").
package collide
