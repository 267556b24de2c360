/*
Package grid provides the structured-grid topology consumed by column-wise
solver passes.

Cartesian implements the natural i + j*nx + k*nx*ny numbering with optional
inactive cells; ExtractColumns partitions any Topology into depth-ordered
vertical columns.
*/
package grid
