package env

import "os"

// Get reads key from the process environment, treating unset and empty the
// same way and returning fallback for both.
func Get(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
