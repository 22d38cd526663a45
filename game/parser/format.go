package parser

// InputFormat describes the mission input for humans and agents
const InputFormat = `MISSION INPUT FORMAT

Input is plain text, one command per line.

Line 1 defines the plateau:
  <name>:<maxX> <maxY>
  Example: Plateau:5 5
  Coordinates run from (0,0) in the lower left to (maxX,maxY) in the upper
  right. Both bounds are non-negative integers.

Every later line addresses one rover:
  <rover> Landing:<x> <y> <orientation>
    Land a new rover facing N, E, S or W. The cell must be on the plateau
    and, with collision detection on, not held by another rover.
    Example: Rover1 Landing:1 2 N

  <rover> Instructions:<commands>
    Run commands on a landed rover, left to right:
      L  turn 90 degrees left
      R  turn 90 degrees right
      M  move one cell forward
    Example: Rover1 Instructions:LMLMLMLMM

Rover names are case-sensitive and contain no spaces or colons. Landing and
Instructions are matched case-insensitively. Blank lines are invalid.

Processing stops at the first invalid line or illegal move and reports the
line number. On success every rover prints as:
  <rover>:<x> <y> <orientation>
in the order the rovers landed.

Example:
  Plateau:5 5
  Rover1 Landing:1 2 N
  Rover1 Instructions:LMLMLMLMM
  Rover2 Landing:3 3 E
  Rover2 Instructions:MMRMMRMRRM

Output:
  Rover1:1 3 N
  Rover2:5 1 E
`
