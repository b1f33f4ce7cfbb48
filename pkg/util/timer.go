package util

import (
	"fmt"
	"log"
	"time"
)

/*
	usage:

	func foo() {
		defer TimeThis(Msg("foo"))
		// code to measure
	}

*/

func Msg(msg string) (string, time.Time) {
	return msg, time.Now()
}

func TimeThis(msg string, start time.Time) {
	log.Printf("%v: %v\n", msg, time.Since(start))
}

// Timed runs fn and returns how long it took. This is the variant for
// callers that record the duration instead of logging it.
func Timed(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

func FormatTime(msg string, t1, t2 time.Time) string {
	return fmt.Sprintf("%s: %0.6f sec\n",
		msg, // the message to print
		float64(t2.Sub(t1).Nanoseconds())/float64(time.Second.Nanoseconds()), // the seconds
	)
}
