package opt

import (
	"strconv"
	"strings"
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which sets options on a request to the endpoint
type Opt func(*opts) error

// set of options
type opts struct {
	values map[string]string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	SystemPromptKey = "system"
	TemperatureKey  = "temperature"
	KeepAliveKey    = "keep_alive"
	SeedKey         = "seed"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(o ...Opt) (*opts, error) {
	opts := &opts{values: make(map[string]string)}
	for _, opt := range o {
		if opt == nil {
			continue
		}
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Has returns true if the key exists
func (o *opts) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// GetString returns the trimmed value for key, or empty string if not set
func (o *opts) GetString(key string) string {
	return strings.TrimSpace(o.values[key])
}

// GetFloat64 returns the float64 value for key, or 0 if not set or invalid
func (o *opts) GetFloat64(key string) float64 {
	if v, err := strconv.ParseFloat(o.GetString(key), 64); err == nil {
		return v
	}
	return 0
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o *opts) GetUint(key string) uint {
	if v, err := strconv.ParseUint(o.GetString(key), 10, 64); err == nil {
		return uint(v)
	}
	return 0
}

// GetDuration returns the duration value for key, or 0 if not set or invalid
func (o *opts) GetDuration(key string) time.Duration {
	if v, err := time.ParseDuration(o.GetString(key)); err == nil {
		return v
	}
	return 0
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(o *opts) error {
		return err
	}
}

// SetString sets a string value, an empty value removes the key
func SetString(key, value string) Opt {
	return func(o *opts) error {
		if value == "" {
			delete(o.values, key)
		} else {
			o.values[key] = value
		}
		return nil
	}
}

func SetFloat64(key string, value float64) Opt {
	return func(o *opts) error {
		o.values[key] = strconv.FormatFloat(value, 'f', -1, 64)
		return nil
	}
}

func SetUint(key string, value uint) Opt {
	return func(o *opts) error {
		o.values[key] = strconv.FormatUint(uint64(value), 10)
		return nil
	}
}

func SetDuration(key string, value time.Duration) Opt {
	return func(o *opts) error {
		o.values[key] = value.String()
		return nil
	}
}
