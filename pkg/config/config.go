package config

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// NewConfig reads <fileName>.yaml from ./configs or . into cfg, letting
// PREFIX_SECTION_KEY environment variables override file values.
func NewConfig(fileName, prefix string, cfg interface{}) error {
	v := viper.New()
	v.SetConfigName(fileName)
	v.AddConfigPath("configs")
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return err
	}
	return unmarshal(v, cfg)
}

func unmarshal(v *viper.Viper, cfg interface{}) error {
	return v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
}
