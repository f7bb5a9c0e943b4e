package service

import (
	"errors"
	"fmt"
)

// FetchErrorKind classifies which upstream source failed.
type FetchErrorKind string

const (
	KindLeagueUnavailable   FetchErrorKind = "league_unavailable"
	KindScheduleUnavailable FetchErrorKind = "schedule_unavailable"
)

var (
	ErrLeagueUnavailable   = errors.New("league data unavailable")
	ErrScheduleUnavailable = errors.New("schedule unavailable")
)

// FetchError is returned by a data-fetching step. The display layer decides
// how to render it.
type FetchError struct {
	Kind FetchErrorKind
	Op   string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *FetchError) Is(target error) bool {
	switch e.Kind {
	case KindLeagueUnavailable:
		return target == ErrLeagueUnavailable
	case KindScheduleUnavailable:
		return target == ErrScheduleUnavailable
	}
	return false
}

// Banner is the single user-visible message for a failed refresh.
func (e *FetchError) Banner() string {
	return fmt.Sprintf("Something went wrong: %v", e.Err)
}

// Banner renders any refresh error as the user-facing message.
func Banner(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Banner()
	}
	return fmt.Sprintf("Something went wrong: %v", err)
}
