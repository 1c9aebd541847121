// Package client implements the client side of the remote recipe store.
//
// RemoteStore is the abstraction the interactors and the syncer depend on.
// GRPCClient implements it over the RemoteStore gRPC service; every call
// carries the configured user id in the "user_id" metadata header.
//
// Transport errors are normalised by mapError:
//
//	codes.Unavailable       -> ErrUnavailable
//	codes.DeadlineExceeded  -> ErrTimeout
//	codes.NotFound          -> common.ErrorNotFound (SearchByID turns it into nil, nil)
//	batch limit violations  -> common.ErrBatchTooLarge
//	any other status        -> *RemoteError with an HTTP-style code
package client
