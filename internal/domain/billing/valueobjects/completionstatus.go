package valueobjects

import "fmt"

// CompletionStatus is the outcome of one work session. A return_needed work
// order leaves the ticket open for another visit.
type CompletionStatus string

const (
	CompletionCompleted    CompletionStatus = "completed"
	CompletionReturnNeeded CompletionStatus = "return_needed"
)

func (s CompletionStatus) String() string {
	return string(s)
}

func (s CompletionStatus) IsValid() bool {
	return s == CompletionCompleted || s == CompletionReturnNeeded
}

func (s CompletionStatus) IsCompleted() bool {
	return s == CompletionCompleted
}

func NewCompletionStatus(str string) (CompletionStatus, error) {
	s := CompletionStatus(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid completion status: %s", str)
	}
	return s, nil
}
