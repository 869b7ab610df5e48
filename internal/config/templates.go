package config

import (
	"fmt"
	"os"
)

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(adventTemplate), 0o644)
}

const adventTemplate = `input_dir = "input"
year = 2024
format = "text"
parallel = false
color = true
# empty keeps ADVENT_LOG_LEVEL, or info when that is unset too
log_level = ""
addr = "127.0.0.1:9024"
cors_origins = ["http://localhost:3000"]
watch_debounce = "250ms"
days = []
metrics_out = ""
`
