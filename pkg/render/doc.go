// Package render visualizes an ordering result as a Graphviz node-link
// diagram.
//
// Nodes are laid out left to right in the computed order, forward edges flow
// rightward, and the feedback edges - the ones whose removal breaks every
// cycle - bend back dashed and red. [ToDOT] produces the DOT text and
// [RenderSVG] rasterizes it through go-graphviz.
package render
