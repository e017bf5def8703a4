// Package config provides centralized management for library settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anisan-cli/anilist/constant"
	"github.com/anisan-cli/anilist/filesystem"
	"github.com/anisan-cli/anilist/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads the configuration into the global viper instance.
// Applications that keep their own global config should call Load with a dedicated instance instead.
func Setup() error {
	return Load(viper.GetViper())
}

// Load registers defaults and environment bindings on v, then reads anilist.toml from where.Config().
// A missing configuration file is not an error.
func Load(v *viper.Viper) error {
	v.SetConfigName(constant.Anilist)
	v.SetConfigType("toml")
	v.SetFs(filesystem.API())
	v.AddConfigPath(where.Config())

	v.SetEnvPrefix(constant.Anilist)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		if err := v.BindEnv(env); err != nil {
			return fmt.Errorf("bind %s: %w", env, err)
		}
	}

	v.SetTypeByDefaultValue(true)
	for name, field := range Default {
		v.SetDefault(name, field.Value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}
