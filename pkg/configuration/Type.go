package configuration

// Configuration is threaded explicitly into every store and the backend; nothing in the core
// reads process environment on its own.
type Configuration struct {
	Home        string   `yaml:"home" mapstructure:"home" validate:"required"`
	Storage     string   `yaml:"storage" mapstructure:"storage" validate:"required"`
	ClusterName string   `yaml:"cluster-name" mapstructure:"cluster-name" validate:"required"`
	LogLevel    string   `yaml:"log" mapstructure:"log"`
	Listen      string   `yaml:"listen" mapstructure:"listen" validate:"required,hostname_port"`
	Backend     string   `yaml:"backend" mapstructure:"backend" validate:"required"`
	Namespace   string   `yaml:"namespace" mapstructure:"namespace" validate:"required"`
	Kubectl     string   `yaml:"kubectl" mapstructure:"kubectl"`
	DryRun      bool     `yaml:"dry-run" mapstructure:"dry-run"`
	Folders     []string `yaml:"folders" mapstructure:"folders"`
}

type HostPort struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}
