// Package result wraps every call into the local or remote store: it bounds
// the call with a timeout and classifies its outcome into exactly one of
// three variants.
//
// Consumers switch on Kind and must handle every variant:
//
//	switch r.Kind() {
//	case result.KindSuccess:
//	case result.KindGenericError:
//	case result.KindNetworkUnavailable:
//	}
package result

import "fmt"

type Kind int

const (
	KindSuccess Kind = iota
	KindGenericError
	KindNetworkUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "Success"
	case KindGenericError:
		return "GenericError"
	case KindNetworkUnavailable:
		return "NetworkUnavailable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Messages carried by GenericError results.
const (
	CacheErrorTimeout   = "Cache timeout"
	CacheErrorUnknown   = "Unknown cache error"
	NetworkErrorTimeout = "Network timeout"
	NetworkErrorUnknown = "Unknown network error"
	NetworkError        = "Network error"
	BatchTooLarge       = "Batch too large"
)

// TimeoutCode is the code attached to remote timeouts.
const TimeoutCode = 408

// Result is the outcome of a wrapped call. The zero value is not meaningful;
// build results with Success, GenericError or NetworkUnavailable.
type Result[T any] struct {
	kind    Kind
	value   T
	code    *int
	message string
	err     error
}

func Success[T any](v T) Result[T] {
	return Result[T]{kind: KindSuccess, value: v}
}

// GenericError builds a failed result. code may be nil; cause is kept for
// errors.Is checks and logging and may be nil as well.
func GenericError[T any](code *int, message string, cause error) Result[T] {
	return Result[T]{kind: KindGenericError, code: code, message: message, err: cause}
}

func NetworkUnavailable[T any](cause error) Result[T] {
	return Result[T]{kind: KindNetworkUnavailable, message: NetworkError, err: cause}
}

func (r Result[T]) Kind() Kind { return r.kind }

func (r Result[T]) Value() T { return r.value }

func (r Result[T]) Code() *int { return r.code }

func (r Result[T]) Message() string { return r.message }

// Err is the underlying cause of a failed result, if known.
func (r Result[T]) Err() error { return r.err }

func (r Result[T]) OK() bool { return r.kind == KindSuccess }

func (r Result[T]) String() string {
	switch r.kind {
	case KindSuccess:
		return fmt.Sprintf("Success(%v)", r.value)
	case KindGenericError:
		if r.code != nil {
			return fmt.Sprintf("GenericError(%d, %s)", *r.code, r.message)
		}
		return fmt.Sprintf("GenericError(%s)", r.message)
	case KindNetworkUnavailable:
		return "NetworkUnavailable"
	default:
		return r.kind.String()
	}
}

func intPtr(v int) *int { return &v }
