package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains the payroll run parameters.
type Config struct {
	Database Database `envPrefix:"DB_"`
	Output   Output
}

// Database contains MySQL connection parameters.
type Database struct {
	Host       string `env:"HOST" envDefault:"localhost"`
	Port       string `env:"PORT" envDefault:"3306"`
	User       string `env:"USER" envDefault:"root"`
	Password   string `env:"PASSWORD" envDefault:""`
	Name       string `env:"NAME" envDefault:"employee_salary_management"`
	MaxRetries int    `env:"MAX_RETRIES" envDefault:"5"`
}

// Output contains destinations for the generated artifacts.
type Output struct {
	SlipDir    string `env:"SLIP_DIR" envDefault:"salary_slips"`
	ReportFile string `env:"REPORT_FILE" envDefault:"complete_salary_report.csv"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
