package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func ReadConfig(jsonStr string) (*Settings, error) {
	viper.Reset()
	viper.SetConfigName("settings")
	viper.SetConfigType("json")

	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	ApplyRegistryDefaults()

	if jsonStr != "" {
		if err := viper.ReadConfig(strings.NewReader(jsonStr)); err != nil {
			return nil, err
		}
	} else {
		if err := viper.ReadInConfig(); err != nil {
			var configFileNotFoundError viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFoundError) {
				return nil, err
			}
		}
	}

	s := &Settings{
		IP:            viper.GetString(IP),
		Port:          viper.GetString(Port),
		LogLevel:      viper.GetString(LogLevel),
		EnableMetrics: viper.GetBool(EnableMetrics),
		History: History{
			MaxStack: viper.GetInt(HistoryMaxStack),
			Delay:    viper.GetInt(HistoryDelay),
		},
		Documents: Documents{
			MaxLength: viper.GetInt(DocumentsMaxLength),
		},
		API: API{
			BodyLimit: viper.GetInt(APIBodyLimit),
		},
	}

	if s.History.MaxStack <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", HistoryMaxStack, s.History.MaxStack)
	}
	if s.History.Delay < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %d", HistoryDelay, s.History.Delay)
	}
	if s.Documents.MaxLength < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %d", DocumentsMaxLength, s.Documents.MaxLength)
	}
	return s, nil
}
