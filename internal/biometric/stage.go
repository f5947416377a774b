package biometric

// Stage is a step of one Invoke call:
// START, then optionally CHALLENGE_PENDING to SUCCESS or ABORT, then DISPATCH to API_OK or API_ERROR.
type Stage int

const (
	StageStart Stage = iota
	StageChallengePending
	StageSuccess
	StageAbort
	StageDispatch
	StageAPIOK
	StageAPIError
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "START"
	case StageChallengePending:
		return "CHALLENGE_PENDING"
	case StageSuccess:
		return "SUCCESS"
	case StageAbort:
		return "ABORT"
	case StageDispatch:
		return "DISPATCH"
	case StageAPIOK:
		return "API_OK"
	case StageAPIError:
		return "API_ERROR"
	default:
		return "UNKNOWN"
	}
}
