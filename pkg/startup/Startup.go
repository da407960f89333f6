package startup

import (
	"fmt"
	"github.com/kre8/kre8/pkg/configuration"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/static"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
)

func SetFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Path to the kre8 config file")
	flags.String("home", "", "Home directory used for provisioned folders")
	flags.String("storage", "", "Storage root holding AWS_Private")
	flags.String("cluster-name", "", "Cluster name used for the master file")
	flags.String("log", static.DEFAULT_LOG_LEVEL, "Log level: debug, info, warn, error")
	flags.String("listen", static.DEFAULT_LISTEN, "Backend listening interface and port")
	flags.String("backend", static.DEFAULT_BACKEND, "Backend events endpoint")
	flags.String("namespace", static.DEFAULT_NAMESPACE, "Namespace for rendered manifests")
	flags.String("kubectl", static.DEFAULT_KUBECTL, "Command line the manifests are piped into")
	flags.Bool("dry-run", false, "Render manifests without applying them")
}

// Load resolves the configuration from flags, environment, .env files and the config file, in
// that order of precedence.
func Load(flags *pflag.FlagSet) (*configuration.Configuration, error) {
	err := LoadDotEnv(DotEnvPaths()...)

	if err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	err = BindEnvironment()

	if err != nil {
		return nil, err
	}

	if flags != nil {
		err = viper.BindPFlags(flags)

		if err != nil {
			return nil, err
		}
	}

	configObj := configuration.NewConfig()

	path := viper.GetString("config")

	if path == "" && viper.GetString("home") != "" {
		configObj.Home = viper.GetString("home")
		path = configObj.ConfigPath()
	}

	if path != "" {
		err = readConfigFile(path)

		if err != nil {
			return nil, err
		}
	}

	err = viper.Unmarshal(configObj)

	if err != nil {
		return nil, err
	}

	err = configObj.Validate()

	if err != nil {
		return nil, err
	}

	return configObj, nil
}

func readConfigFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	err := viper.ReadInConfig()

	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	logger.Log.Debug("configuration file loaded", zap.String("path", path))

	return nil
}

func Save(configObj *configuration.Configuration) error {
	yamlObj, err := yaml.Marshal(*configObj)

	if err != nil {
		return err
	}

	path := configObj.ConfigPath()

	err = os.MkdirAll(filepath.Dir(path), 0750)

	if err != nil {
		return err
	}

	return os.WriteFile(path, yamlObj, 0644)
}
