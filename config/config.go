package config

import (
	"os"
	"strconv"
	"strings"
)

// Placeholder sentinels shipped in the example .env; remote mode stays off
// until both values are replaced with real project credentials.
const (
	PlaceholderURL = "YOUR_SUPABASE_URL"
	PlaceholderKey = "YOUR_SUPABASE_ANON_KEY"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

// Remote holds the hosted-backend connection settings.
type Remote struct {
	URL string
	Key string
}

// RemoteConfig reads the hosted-backend settings from the environment map.
func RemoteConfig(config map[string]string) Remote {
	return Remote{
		URL: GetString(config, "SUPABASE_URL", ""),
		Key: GetString(config, "SUPABASE_ANON_KEY", ""),
	}
}

// Configured reports whether the remote backend should be used: both values
// must be present and not equal to the placeholder sentinels.
func (r Remote) Configured() bool {
	return r.URL != "" && r.Key != "" &&
		r.URL != PlaceholderURL && r.Key != PlaceholderKey
}
