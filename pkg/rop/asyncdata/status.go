package asyncdata

import "fmt"

// Status is the lifecycle tag of an AsyncData snapshot.
type Status int

const (
	NotAskedStatus Status = iota
	LoadingStatus
	FailureStatus
	SuccessStatus
)

var statusNames = map[Status]string{
	NotAskedStatus: "not_asked",
	LoadingStatus:  "loading",
	FailureStatus:  "failure",
	SuccessStatus:  "success",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}
	return []byte(name), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}
