package config

import "os"

func IsDebug() bool {
	return os.Getenv("CHATLOG_DEBUG") == "1"
}
