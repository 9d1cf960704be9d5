package models

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

type ErrorKind string

const (
	TransportCanceled          ErrorKind = "TransportCanceled"
	DestinationDeniedOrInvalid ErrorKind = "DestinationDeniedOrInvalid"
	CacheUnavailable           ErrorKind = "CacheUnavailable"
	StatisticsStoreUnavailable ErrorKind = "StatisticsStoreUnavailable"
	SessionInvalidated         ErrorKind = "SessionInvalidated"
	MessageDeliveryFailed      ErrorKind = "MessageDeliveryFailed"
	NotFound                   ErrorKind = "NotFound"
	BadParameters              ErrorKind = "BadParameters"
)

var (
	ErrTransportCanceled          = NewKindError(TransportCanceled, errors.New("transport canceled"))
	ErrDestinationDeniedOrInvalid = NewKindError(DestinationDeniedOrInvalid, errors.New("download destination denied or invalid"))
	ErrCacheUnavailable           = NewKindError(CacheUnavailable, errors.New("disk cache unavailable"))
	ErrStatisticsStoreUnavailable = NewKindError(StatisticsStoreUnavailable, errors.New("resource load statistics store unavailable"))
	ErrSessionInvalidated         = NewKindError(SessionInvalidated, errors.New("session is invalidated"))
	ErrMessageDeliveryFailed      = NewKindError(MessageDeliveryFailed, errors.New("message delivery failed"))
	ErrNotFound                   = NewKindError(NotFound, errors.New("not found"))
	ErrBadParameters              = NewKindError(BadParameters, errors.New("bad parameters"))
)

var kindCodes = map[ErrorKind]int{
	TransportCanceled:          StatusRequestCancelled,
	DestinationDeniedOrInvalid: http.StatusForbidden,
	CacheUnavailable:           http.StatusServiceUnavailable,
	StatisticsStoreUnavailable: http.StatusServiceUnavailable,
	SessionInvalidated:         http.StatusGone,
	MessageDeliveryFailed:      http.StatusBadGateway,
	NotFound:                   http.StatusNotFound,
	BadParameters:              http.StatusBadRequest,
}

// StatusRequestCancelled unofficial status code, it is never sent over the wire
const StatusRequestCancelled = 499

type ErrorWithCode interface {
	error
	Code() int
}

type ErrorWithKind interface {
	error
	Kind() ErrorKind
}

// KindError tags an error with one of the failure kinds of the control layer.
// Two KindError values match with errors.Is when their kinds are equal, so
// callers can test against the Err* sentinels regardless of the wrapped cause.
type KindError struct {
	kind ErrorKind
	err  error
}

func NewKindError(kind ErrorKind, err error) *KindError {
	return &KindError{kind: kind, err: err}
}

func (e *KindError) Kind() ErrorKind {
	return e.kind
}

func (e *KindError) Code() int {
	if code, ok := kindCodes[e.kind]; ok {
		return code
	}
	return http.StatusInternalServerError
}

func (e *KindError) Error() string {
	return e.err.Error()
}

func (e *KindError) Unwrap() error {
	return e.err
}

func (e *KindError) Is(target error) bool {
	t, ok := target.(*KindError)
	return ok && t.kind == e.kind
}

func NewSessionInvalidatedError(err error) *KindError {
	return NewKindError(SessionInvalidated, err)
}

func NewDestinationDeniedError(err error) *KindError {
	return NewKindError(DestinationDeniedOrInvalid, err)
}

func NewTransportCanceledError(err error) *KindError {
	return NewKindError(TransportCanceled, err)
}

func NewCacheUnavailableError(err error) *KindError {
	return NewKindError(CacheUnavailable, err)
}

func NewStatisticsStoreUnavailableError(err error) *KindError {
	return NewKindError(StatisticsStoreUnavailable, err)
}

func NewMessageDeliveryFailedError(err error) *KindError {
	return NewKindError(MessageDeliveryFailed, err)
}

func NewNotFoundError(err error) *KindError {
	return NewKindError(NotFound, err)
}

func NewBadParametersError(err error) *KindError {
	return NewKindError(BadParameters, err)
}

// KindOf returns the kind of the first KindError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e ErrorWithKind
	if errors.As(err, &e) {
		return e.Kind(), true
	}
	return "", false
}

func WrapCanceledErr(err error, msg string) error {
	var e ErrorWithKind
	if errors.Is(err, context.Canceled) && !errors.As(err, &e) {
		err = NewTransportCanceledError(err)
	}
	return errors.Wrap(err, msg)
}
