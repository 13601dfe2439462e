package embedding

// State is a node of the documentation parsing state machine.
type State uint8

const (
	Start State = iota
	RegularLine
	Directive
	BlankLine
	FenceStart
	FenceLine
	FenceEnd
	Finish
)

var stateNames = [...]string{
	Start:       "START",
	RegularLine: "REGULAR_LINE",
	Directive:   "DIRECTIVE",
	BlankLine:   "BLANK_LINE",
	FenceStart:  "FENCE_START",
	FenceLine:   "FENCE_LINE",
	FenceEnd:    "FENCE_END",
	Finish:      "FINISH",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "UNKNOWN"
}

// transitions lists, per state, the states that may follow it in priority order.
var transitions = map[State][]State{
	Start:       {Finish, Directive, RegularLine},
	RegularLine: {Finish, Directive, RegularLine},
	FenceEnd:    {Finish, Directive, RegularLine},
	Directive:   {FenceStart, BlankLine},
	BlankLine:   {FenceStart, BlankLine},
	FenceStart:  {FenceEnd, FenceLine},
	FenceLine:   {FenceEnd, FenceLine},
}
