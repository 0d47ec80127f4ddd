package instance

import "os"

// GetID identifies the running process in logs. Hosting platforms expose the
// id under different variables; the first one set wins.
func GetID() string {
	for _, key := range []string{"RENDER_INSTANCE_ID", "DYNO", "HOSTNAME"} {
		if id := os.Getenv(key); id != "" {
			return id
		}
	}
	return "local"
}
