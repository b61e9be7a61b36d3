package distributions

import "fmt"

//Check levels for precondition validation. Violated preconditions
//panic immediately rather than letting corrupted sufficient statistics
//propagate into later posterior computations.
const (
	CheckNone  = iota // no validation at all
	CheckCheap        // O(1) bounds and non-empty-group checks
	CheckFull         // adds buffer-length validation on batch scoring
)

//CheckLevel controls which precondition checks run. Lowering it trades
//safety for speed in inner sampling loops.
var CheckLevel = CheckCheap

func assertAt(level int, cond bool, format string, args ...interface{}) {
	if CheckLevel >= level && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
