// Package response turns store results into the single terminal state an
// interactor hands to the presentation layer.
package response

type UIComponentType int

const (
	UIComponentNone UIComponentType = iota
	UIComponentToast
	UIComponentSnackBar
	UIComponentDialog
)

func (t UIComponentType) String() string {
	switch t {
	case UIComponentToast:
		return "Toast"
	case UIComponentSnackBar:
		return "SnackBar"
	case UIComponentDialog:
		return "Dialog"
	default:
		return "None"
	}
}

type MessageType int

const (
	MessageSuccess MessageType = iota
	MessageError
	MessageInfo
	MessageNone
)

func (t MessageType) String() string {
	switch t {
	case MessageSuccess:
		return "Success"
	case MessageError:
		return "Error"
	case MessageInfo:
		return "Info"
	default:
		return "None"
	}
}

type Response struct {
	Message         string
	UIComponentType UIComponentType
	MessageType     MessageType
}

type StateMessage struct {
	Response Response
}

// StateEvent identifies the user action that produced a DataState.
type StateEvent interface {
	ErrorInfo() string
	EventName() string
	ShouldDisplayProgressBar() bool
}

// DataState is the terminal outcome of an interactor. StateMessage is nil
// only when the interactor has nothing to say; Data is nil on failure.
type DataState[T any] struct {
	StateMessage *StateMessage
	Data         *T
	StateEvent   StateEvent
}

// Data builds a state carrying data and a message.
func Data[T any](resp Response, data *T, ev StateEvent) DataState[T] {
	return DataState[T]{StateMessage: &StateMessage{Response: resp}, Data: data, StateEvent: ev}
}

// NoData builds a state with a message and no data.
func NoData[T any](resp Response, ev StateEvent) DataState[T] {
	return DataState[T]{StateMessage: &StateMessage{Response: resp}, StateEvent: ev}
}

// Message returns the state's message text, or "" when there is none.
func (s DataState[T]) Message() string {
	if s.StateMessage == nil {
		return ""
	}
	return s.StateMessage.Response.Message
}

// IsError reports whether the state carries an error message.
func (s DataState[T]) IsError() bool {
	return s.StateMessage != nil && s.StateMessage.Response.MessageType == MessageError
}
