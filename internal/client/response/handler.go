package response

import (
	"fmt"
	"reflect"

	"github.com/dmitrijs2005/recipediary/internal/client/result"
)

// DataIsNull is the reason reported when a store call succeeds without data.
const DataIsNull = "Data is NULL."

// HandleCache maps a local store result to a state. onSuccess runs only for
// a successful, non-nil value.
func HandleCache[T, V any](r result.Result[T], ev StateEvent, onSuccess func(T) DataState[V]) DataState[V] {
	return handle(r, ev, onSuccess)
}

// HandleRemote maps a remote store result to a state.
func HandleRemote[T, V any](r result.Result[T], ev StateEvent, onSuccess func(T) DataState[V]) DataState[V] {
	return handle(r, ev, onSuccess)
}

func handle[T, V any](r result.Result[T], ev StateEvent, onSuccess func(T) DataState[V]) DataState[V] {
	switch r.Kind() {
	case result.KindGenericError:
		return failure[V](ev, r.Message())
	case result.KindNetworkUnavailable:
		return failure[V](ev, result.NetworkError)
	case result.KindSuccess:
		if isNil(r.Value()) {
			return failure[V](ev, DataIsNull)
		}
		return onSuccess(r.Value())
	default:
		panic(fmt.Sprintf("response: unexpected result kind %v", r.Kind()))
	}
}

func failure[V any](ev StateEvent, reason string) DataState[V] {
	return NoData[V](Response{
		Message:         ErrorText(ev, reason),
		UIComponentType: UIComponentDialog,
		MessageType:     MessageError,
	}, ev)
}

// ErrorText formats a failure message for ev.
func ErrorText(ev StateEvent, reason string) string {
	info := ""
	if ev != nil {
		info = ev.ErrorInfo()
	}
	return fmt.Sprintf("%s\n\nReason: %s", info, reason)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
