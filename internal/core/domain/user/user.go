// Package user carries the identity type shared with the surrounding
// application. Authentication itself happens upstream; this service only ever
// sees an already resolved user ID.
package user

type ID int64
