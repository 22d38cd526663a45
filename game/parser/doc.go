// Package parser turns raw mission input lines into engine actions.
//
// Two line shapes are understood:
//
//	Plateau:5 5                  plateau definition, always the first line
//	Rover1 Landing:1 2 N         land a rover
//	Rover1 Instructions:LMLMM    run a command sequence on a landed rover
//
// ParsePlateau handles the first shape. RoverParser handles the second: it
// splits the shared "<name> <TYPE>:<details>" header and dispatches on TYPE
// to the landing or instructions handler. All syntax problems are reported
// as *engine.ParseError.
package parser
