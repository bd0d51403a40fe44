package config

import (
	"bufio"
	"os"
	"strings"
)

// loadEnvFiles reads simple KEY=VALUE pairs from any of the given files
// into the process environment. Best-effort local development convenience:
// missing files and malformed lines are skipped silently.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			key := strings.TrimSpace(parts[0])
			val := strings.TrimSpace(parts[1])
			val = strings.Trim(val, `"`)
			if key != "" {
				os.Setenv(key, val)
			}
		}
		_ = f.Close()
	}
}
