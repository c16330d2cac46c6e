package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}

func Mapper[T any, R any](items []T, mapFn func(T) R) []R {
	mapped := make([]R, len(items))
	for i := range len(items) {
		mapped[i] = mapFn(items[i])
	}
	return mapped
}

func Reducer[T any, R any](items []T, reduceFn func(R, T) R, initAcc R) R {
	finalAcc := initAcc
	for i := range len(items) {
		finalAcc = reduceFn(finalAcc, items[i])
	}
	return finalAcc
}

// LookupEnvTrimmed returns the trimmed value of key, and false when the
// variable is unset or blank.
func LookupEnvTrimmed(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func EnvOrDefault(key, def string) string {
	if v, ok := LookupEnvTrimmed(key); ok {
		return v
	}
	return def
}

func EnvFloatOrDefault(key string, def float64) (float64, error) {
	v, ok := LookupEnvTrimmed(key)
	if !ok {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}

// EnvIntOrDefault accepts decimal and 0x-prefixed values, so device
// addresses can be written the way they are printed on the hardware.
func EnvIntOrDefault(key string, def int) (int, error) {
	v, ok := LookupEnvTrimmed(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 0, 64)
	return int(n), err
}

func EnvBoolOrDefault(key string, def bool) (bool, error) {
	v, ok := LookupEnvTrimmed(key)
	if !ok {
		return def, nil
	}
	return strconv.ParseBool(v)
}

func EnvMillisOrDefault(key string, def time.Duration) (time.Duration, error) {
	v, ok := LookupEnvTrimmed(key)
	if !ok {
		return def, nil
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}
