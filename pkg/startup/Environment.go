package startup

import (
	"github.com/joho/godotenv"
	"github.com/kre8/kre8/internal/helpers"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/static"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"os"
	"path/filepath"
	"strings"
)

// DotEnvPaths lists the .env files considered, lowest priority last.
func DotEnvPaths() []string {
	return []string{
		static.ENVFILE,
		filepath.Join(helpers.GetRealHome(), static.ROOTDIR, static.ENVFILE),
	}
}

// LoadDotEnv exports variables from the existing files; variables already set in the process win.
func LoadDotEnv(paths ...string) error {
	existing := make([]string, 0, len(paths))

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}

	if len(existing) == 0 {
		return nil
	}

	logger.Log.Debug("loading environment files", zap.Strings("paths", existing))

	return godotenv.Load(existing...)
}

func BindEnvironment() error {
	viper.SetEnvPrefix(static.ENV_PREFIX)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if helpers.IsRunningAsSudo() {
		// HOME points at root under sudo
		viper.SetDefault("home", helpers.GetRealHome())

		if err := viper.BindEnv("home", "KRE8_HOME"); err != nil {
			return err
		}
	} else {
		if err := viper.BindEnv("home", "KRE8_HOME", "HOME"); err != nil {
			return err
		}
	}

	if err := viper.BindEnv("storage", "KRE8_STORAGE", "AWS_STORAGE"); err != nil {
		return err
	}

	return viper.BindEnv("cluster-name", "KRE8_CLUSTER_NAME", "CLUSTER_NAME")
}
