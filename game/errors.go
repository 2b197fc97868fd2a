package game

import "errors"

// Engine errors. Callers match them with errors.Is; the messages returned
// by the engine wrap these with the offending indices or troop counts.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidAttack   = errors.New("invalid attack")
	ErrUnknownMission  = errors.New("unknown mission")
	ErrInvalidStore    = errors.New("invalid territory store")
)
