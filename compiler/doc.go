/*

Process of visualization

MIR Description Text (yaml) ->
	decode (mirfile) ->
Middle Intermediate Representation (mir) ->
	write (graphviz) ->
Graph Description Text (dot) ->
	layout (render) ->
Image (svg, png)

*/
package compiler
