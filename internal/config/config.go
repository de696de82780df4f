package config // package config loads application configuration from environment variables

import (
	"log" // log reports .env problems before the application logger exists
	"os"  // os provides access to environment variables

	"github.com/joho/godotenv" // godotenv loads an optional .env file into the process environment
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a default so the catalog can be
// started against a local MongoDB without any setup.
type Config struct {
	Env         string // application environment (e.g. "dev", "prod")
	Port        string // HTTP port to listen on
	MongoURI    string // connection string for the document store
	MongoDB     string // database holding the movie collection
	Collection  string // name of the movie collection
	ViewsDir    string // directory with the HTML templates
	PublicDir   string // directory served as static assets
	RabbitMQURL string // broker URL for change notifications (empty disables publishing)
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file in the working directory is loaded first when present;
// variables that are already set in the environment take precedence.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}
	return Config{
		Env:         getenv("APP_ENV", "dev"),
		Port:        getenv("PORT", "8000"),
		MongoURI:    getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:     getenv("MONGODB_DATABASE", "moviecatalog"),
		Collection:  getenv("MONGODB_COLLECTION", "movies"),
		ViewsDir:    getenv("VIEWS_DIR", "web/views"),
		PublicDir:   getenv("PUBLIC_DIR", "web/public"),
		RabbitMQURL: brokerURL(),
	}
}

// IsProd reports whether the application runs in the production environment.
func (c Config) IsProd() bool {
	return c.Env == "prod" || c.Env == "production"
}

// brokerURL returns RABBITMQ_URL, falling back to AMQP_URL.
func brokerURL() string {
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		return url
	}
	return os.Getenv("AMQP_URL")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
