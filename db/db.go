package db

import "context"

type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
