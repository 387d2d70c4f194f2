// Package gameday provides the types and functions for one day of MLB games.
//
// The gameday package maps calendar dates onto the grid endpoint's URL scheme,
// walks a parsed grid document to collect every object that carries the
// game_media marker key, and trims collected records down to the fixed list of
// exported columns.
package gameday
