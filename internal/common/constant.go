// Package common contains shared constants and sentinel errors used by the
// recipe diary client and server.
package common

// UserIDHeaderName is the gRPC metadata key that scopes remote data to a user.
const UserIDHeaderName = "user_id"

// MaxRemoteBatchSize is the largest batch the remote store accepts in a single
// InsertOrUpdateBatch call.
const MaxRemoteBatchSize = 500
