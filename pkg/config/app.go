package config

// App holds the settings shared by every binary in the module.
type App struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"viewkit"`
	LogLevel string `env:"LOG_LEVEL"`
}
