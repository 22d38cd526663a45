package service

import "fmt"

// PlateauInfo describes the plateau a mission ran on
type PlateauInfo struct {
	Name       string `json:"name"`
	MaxX       int    `json:"max_x"`
	MaxY       int    `json:"max_y"`
	Collisions bool   `json:"collisions"`
}

// RoverStatus is the final state of one rover
type RoverStatus struct {
	Name        string `json:"name"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Orientation string `json:"orientation"`
}

// String formats the status as "<name>:<x> <y> <orientation>"
func (s RoverStatus) String() string {
	return fmt.Sprintf("%s:%d %d %s", s.Name, s.X, s.Y, s.Orientation)
}

// MissionStats counts what a mission did
type MissionStats struct {
	Lines        int `json:"lines"`
	Landings     int `json:"landings"`
	Instructions int `json:"instructions"`
}

// MissionReport is the result of a successful simulation
type MissionReport struct {
	SessionID string        `json:"session_id"`
	Source    string        `json:"source,omitempty"`
	Plateau   PlateauInfo   `json:"plateau"`
	Rovers    []RoverStatus `json:"rovers"`
	Stats     MissionStats  `json:"stats"`
}

// Lines returns the report as status lines in landing order
func (r *MissionReport) Lines() []string {
	lines := make([]string, 0, len(r.Rovers))
	for _, rover := range r.Rovers {
		lines = append(lines, rover.String())
	}
	return lines
}

// ValidationResult summarises one mission input
type ValidationResult struct {
	SessionID string       `json:"session_id"`
	Source    string       `json:"source,omitempty"`
	Valid     bool         `json:"valid"`
	Line      int          `json:"line,omitempty"`  // failing line, 0 when valid
	Error     string       `json:"error,omitempty"` // failure message, empty when valid
	Plateau   *PlateauInfo `json:"plateau,omitempty"`
	Rovers    int          `json:"rovers"`
	Stats     MissionStats `json:"stats"`
}

// Summary returns a one-line description of what the mission did
func (r *ValidationResult) Summary() string {
	summary := fmt.Sprintf("%s landed, %s executed",
		pluralize(r.Rovers, "rover"), pluralize(r.Stats.Instructions, "instruction"))
	if r.Plateau != nil {
		summary = fmt.Sprintf("%s (0,0)-(%d,%d), %s", r.Plateau.Name, r.Plateau.MaxX, r.Plateau.MaxY, summary)
	}
	return summary
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
