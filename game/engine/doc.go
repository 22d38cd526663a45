// Package engine provides the core mission logic for the Mars Rover simulator.
//
// The engine package implements:
//   - A bounded rectangular plateau with optional occupancy tracking
//   - Rovers that turn and move one cell at a time across a plateau
//   - Boundary and collision detection for every proposed move
//   - Typed errors describing why an input or an operation was rejected
//
// Core Types:
//
// Plateau is the bounded grid, from (0,0) up to (MaxX, MaxY) inclusive.
// Rover holds a name, a position and an Orientation and is bound to exactly
// one plateau. Orientation is a four-valued enumeration with the clockwise
// order E, S, W, N used for turning.
//
// Usage:
//
//	plateau, err := engine.NewPlateau("Plateau", 5, 5, engine.WithCollisionDetection())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rover, err := engine.Land(plateau, "Rover1", 1, 2, engine.North)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := rover.ExecuteSequence("LMLMLMLMM"); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(rover.Status()) // Rover1:1 3 N
//
// Collisions:
//
// When the plateau is created with WithCollisionDetection, every landed rover
// occupies its cell and no other rover may land on or move into it. The
// occupancy map is synchronised once per instruction sequence, using the
// position the rover held before the sequence started.
package engine
