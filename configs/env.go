package configs

import (
	"github.com/spf13/viper"
)

// EnvConfig holds settings read straight from the environment. They back the
// application.yml properties when those are left empty.
type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	OwnerAddress    string
}

var Env *EnvConfig

func init() {
	env := viper.New()
	env.AutomaticEnv()
	env.SetDefault("APPLICATION_NAME", "todo-api")
	env.SetDefault("CONTEXT_PATH", "/todo-api")

	Env = &EnvConfig{
		ApplicationName: env.GetString("APPLICATION_NAME"),
		ContextPath:     env.GetString("CONTEXT_PATH"),
		OwnerAddress:    env.GetString("TODO_OWNER"),
	}
}
