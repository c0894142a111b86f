package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Lexicon.Driver {
	case "sqlite":
		if c.Lexicon.Path == "" {
			return fmt.Errorf("lexicon.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	case "none":
	default:
		return fmt.Errorf("lexicon.driver must be sqlite, postgres, or none (got %q)", c.Lexicon.Driver)
	}

	if c.Engine.NodeBudget <= 0 {
		return fmt.Errorf("engine.node_budget must be > 0 (got %d)", c.Engine.NodeBudget)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}
	return nil
}
