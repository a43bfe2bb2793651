package beq

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/beqtools/beq/expr"
)

// Config is the on-disk configuration. Aliases maps an operator name
// ("not", "and", "or", "xor") to additional spellings to register.
type Config struct {
	Name    string              `yaml:"name,omitempty"`
	Aliases map[string][]string `yaml:"aliases,omitempty"`
}

var operatorNames = map[string]expr.OperatorKind{
	"not": expr.OpNot,
	"and": expr.OpAnd,
	"or":  expr.OpOr,
	"xor": expr.OpXor,
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", configurationPath, err)
	}
	return config, nil
}

func registerAliases(table *expr.AliasTable, config Config) error {
	for opName, spellings := range config.Aliases {
		kind, ok := operatorNames[opName]
		if !ok {
			return fmt.Errorf("config: unknown operator %q (want not, and, or, xor)", opName)
		}
		for _, spelling := range spellings {
			if err := table.Register(spelling, kind); err != nil {
				return fmt.Errorf("config: %w", err)
			}
		}
	}
	return nil
}

// InitConfigurationFile writes a starter configuration to the given path,
// or .beq.yaml when the path is empty.
func InitConfigurationFile(configurationPath string) (string, error) {
	if configurationPath == "" {
		configurationPath = ".beq.yaml"
	}

	config := Config{
		Name: "beq",
		Aliases: map[string][]string{
			"not": {},
			"and": {},
			"or":  {},
			"xor": {},
		},
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(configurationPath, d, 0o644); err != nil {
		return "", err
	}
	return configurationPath, nil
}
