// Package viewer binds the selected city to the map surface.
//
// A ViewState holds the one selected city. MapViewport, DistrictLayer and
// MarkerLayer subscribe to it once at construction and re-derive their
// output synchronously on every change, issuing commands to a Surface.
// SelectionControl is the only writer; LegendPanel is static.
//
// All mutation happens on the caller's goroutine. Surface commands are
// one-way: the viewer never waits for an animation to finish.
package viewer
