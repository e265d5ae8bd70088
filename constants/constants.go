package constants

import "os"

const Version = "0.1.0"

// GetConfigPath returns the config file named by JSB_CONFIG, or "" when
// unset.
func GetConfigPath() string {
	return os.Getenv("JSB_CONFIG")
}

// GetOutDir returns JSB_OUT_DIR, or "" to keep the configured directory.
func GetOutDir() string {
	return os.Getenv("JSB_OUT_DIR")
}

const DefaultOutDir = "./out"

const DefaultAddr = ":8080"
