package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"todo-api/pkg/log"
)

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)
)

// init loads application properties from YAML. A missing file is tolerated so packages
// depending on resource can be tested without a configs directory.
func init() {
	path, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		path = "configs/application.yml"
	}
	if err := Init(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Errorf("Fail to read properties: %v", err)
	}
}

// Init reads the YAML file at filepath and resolves ${ENV:default} placeholders.
func Init(filepath string) error {
	if _, err := os.Stat(filepath); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", filepath, err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	for key, value := range resolved {
		properties.Set(key, value)
	}
	return nil
}

// parsePropertiesMap flattens the YAML tree into dotted keys
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment value, falling back
// to the default. Values without a placeholder are returned unchanged.
func resolveEnvVariable(value string) any {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}
	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

// Set overrides a property at runtime.
func Set(key string, value any) {
	properties.Set(key, value)
}

func IsSet(key string) bool {
	return properties.IsSet(key)
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

// GetStringWithDefault returns the property or defaultValue when it is empty.
func GetStringWithDefault(key, defaultValue string) string {
	if value := properties.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

// GetDurationWithDefault returns the property or defaultValue when it is unset or zero.
func GetDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := properties.GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

// GetIntWithDefault returns the property or defaultValue when it is unset.
func GetIntWithDefault(key string, defaultValue int) int {
	if !properties.IsSet(key) {
		return defaultValue
	}
	return properties.GetInt(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
