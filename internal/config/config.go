package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Degree DegreeConfig `mapstructure:"degree" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DegreeConfig contains the scales used for projections.
// The defaults describe a three-year degree graded out of 30 with a final
// score out of 110.
type DegreeConfig struct {
	GradeScale   int `mapstructure:"grade_scale" validate:"required,gt=0"`
	FinalScale   int `mapstructure:"final_scale" validate:"required,gt=0"`
	CreditTarget int `mapstructure:"credit_target" validate:"required,gt=0"`
}
