// Package session drives one mission from raw input lines to a status report.
//
// The session package implements:
//   - Registry, the per-session name to rover lookup kept in landing order
//   - Session, the line-by-line state machine that owns a plateau and a registry
//   - LineError, which tags any failure with the 1-based input line number
//
// State Machine:
//
// A session starts in StateAwaitPlateau. The first line must define the
// plateau, after which the session moves to StateAwaitRovers and accepts
// landing and instruction lines. Finish moves it to StateReported, after
// which Report returns one status line per rover. Any error moves the session
// to StateFailed; a failed session never reports.
//
// Usage:
//
//	registry := session.NewRegistry()
//	sess := session.New(registry, session.Options{Collisions: true})
//
//	if err := sess.Run(ctx, strings.NewReader(input)); err != nil {
//		var lineErr *session.LineError
//		if errors.As(err, &lineErr) {
//			log.Printf("line %d: %v", lineErr.Line, lineErr.Err)
//		}
//		return err
//	}
//
//	report, _ := sess.Report()
//	for _, status := range report {
//		fmt.Println(status)
//	}
//
// Sessions share nothing. Each one owns its plateau and registry, so any
// number of sessions can be run one after another in the same process.
package session
