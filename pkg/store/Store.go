package store

import "github.com/kre8/kre8/pkg/configuration"

func New(configObj *configuration.Configuration, opts ...Option) *Stores {
	return &Stores{
		Directory:   NewDirectory(configObj.Home),
		Credentials: NewCredentials(configObj),
		Master:      NewMaster(configObj, opts...),
	}
}
