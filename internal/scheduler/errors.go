package scheduler

type AllocationErrorCode string

const (
	ErrCodeNoSubjects        AllocationErrorCode = "NO_SUBJECTS"
	ErrCodeInvalidTotalHours AllocationErrorCode = "INVALID_TOTAL_HOURS"
)

// AllocationError reports input the allocator refuses to work with.
type AllocationError struct {
	Code    AllocationErrorCode
	Message string
}

func (e *AllocationError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Is matches on Code so wrapped errors compare against the sentinels below.
func (e *AllocationError) Is(target error) bool {
	t, ok := target.(*AllocationError)
	return ok && t.Code == e.Code
}

var (
	ErrNoSubjects        = &AllocationError{Code: ErrCodeNoSubjects, Message: "at least one subject is required"}
	ErrInvalidTotalHours = &AllocationError{Code: ErrCodeInvalidTotalHours, Message: "total hours must be a positive number"}
)
