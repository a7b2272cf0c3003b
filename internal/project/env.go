package project

import (
	"os"

	"github.com/joho/godotenv"
)

// BuildCacheEnv overrides where built packages are published from.
const BuildCacheEnv = "CONDA_BLD_PATH"

// BuildCacheDir resolves the build cache directory. The process environment
// wins over envFile; without either the working directory is used.
func BuildCacheDir(envFile string) (string, error) {
	if dir := os.Getenv(BuildCacheEnv); dir != "" {
		return dir, nil
	}
	if envFile != "" {
		if vars, err := godotenv.Read(envFile); err == nil {
			if dir := vars[BuildCacheEnv]; dir != "" {
				return dir, nil
			}
		}
	}
	return os.Getwd()
}
