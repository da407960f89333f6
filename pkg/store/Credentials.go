package store

import (
	"github.com/kre8/kre8/pkg/configuration"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/static"
	"go.uber.org/zap"
)

func NewCredentials(configObj *configuration.Configuration) *Credentials {
	return &Credentials{
		file: newJsonFile(static.STORE_CREDENTIALS, configObj.CredentialsPath()),
	}
}

func (c *Credentials) Path() string {
	return c.file.path
}

// Init writes an empty mapping when the file is missing.
func (c *Credentials) Init() error {
	exists, err := c.file.exists()

	if err != nil || exists {
		return err
	}

	return c.file.write(map[string]interface{}{})
}

// Upsert sets key and writes the whole file back. Overlapping calls are not serialised.
func (c *Credentials) Upsert(key string, value interface{}) error {
	parsed, err := c.file.read()

	if err != nil {
		return err
	}

	parsed[key] = value

	err = c.file.write(parsed)

	if err != nil {
		return err
	}

	logger.Log.Info("credential updated", zap.String("key", key))

	return nil
}

func (c *Credentials) Get(key string) (interface{}, bool, error) {
	parsed, err := c.file.read()

	if err != nil {
		return nil, false, err
	}

	value, ok := parsed[key]

	return value, ok, nil
}

func (c *Credentials) All() (map[string]interface{}, error) {
	return c.file.read()
}
