package configuration

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/kre8/kre8/pkg/static"
	"path/filepath"
	"reflect"
	"strings"
)

func NewConfig() *Configuration {
	return &Configuration{
		LogLevel:  static.DEFAULT_LOG_LEVEL,
		Listen:    static.DEFAULT_LISTEN,
		Backend:   static.DEFAULT_BACKEND,
		Namespace: static.DEFAULT_NAMESPACE,
		Kubectl:   static.DEFAULT_KUBECTL,
		Folders:   []string{static.ROOTDIR},
	}
}

// Validate reports every missing or malformed key in one error.
func (c *Configuration) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("mapstructure")
	})

	err := validate.Struct(c)

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors

	if !errors.As(err, &validationErrors) {
		return err
	}

	problems := make([]string, 0, len(validationErrors))

	for _, fieldError := range validationErrors {
		switch fieldError.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", fieldError.Field()))
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid (%s)", fieldError.Field(), fieldError.Tag()))
		}
	}

	return fmt.Errorf("configuration error: %s", strings.Join(problems, ", "))
}

func (c *Configuration) PrivateDir() string {
	return filepath.Join(c.Storage, static.PRIVATEDIR)
}

func (c *Configuration) CredentialsPath() string {
	return filepath.Join(c.PrivateDir(), static.CREDENTIALS)
}

func (c *Configuration) MasterFilePath() string {
	return filepath.Join(c.PrivateDir(), fmt.Sprintf("%s%s", c.ClusterName, static.MASTER_FILE))
}

func (c *Configuration) LockPath() string {
	return filepath.Join(c.PrivateDir(), static.LOCKFILE)
}

func (c *Configuration) ConfigPath() string {
	return filepath.Join(c.Home, static.ROOTDIR, static.CONFIGDIR, static.CONFIGFILE)
}
