// Package config reads column mappings and other settings from Viper, so
// that they can come from .rostercheck.yaml, environment variables or .env
// files as well as from flags.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/agentstation/rostercheck/pkg/records"
)

// Mapping keys, e.g. MAPPING_MASTER_IDENTIFIER in the environment.
const (
	KeyMasterIdentifier     = "mapping.master.identifier"
	KeyMasterName           = "mapping.master.name"
	KeyMasterWorkplace      = "mapping.master.workplace"
	KeyValidationIdentifier = "mapping.validation.identifier"
	KeyValidationName       = "mapping.validation.name"
	KeyValidationWorkplace  = "mapping.validation.workplace"
)

var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// EnvKey returns the environment variable read for a Viper key.
func EnvKey(key string) string {
	return strings.ToUpper(envKeyReplacer.Replace(key))
}

// GetString is a helper to get string values from Viper.
// It falls back to the OS environment when Viper has no value.
func GetString(key string) string {
	return getString(viper.GetViper(), key)
}

func getString(v *viper.Viper, key string) string {
	value := v.GetString(key)
	if value == "" {
		return os.Getenv(EnvKey(key))
	}
	return value
}

// MappingFromViper returns the column mapping configured in v. A nil v
// uses the global Viper instance. Unset columns are empty.
func MappingFromViper(v *viper.Viper) records.Mapping {
	if v == nil {
		v = viper.GetViper()
	}
	return records.Mapping{
		Master: records.Fields{
			Identifier: getString(v, KeyMasterIdentifier),
			Name:       getString(v, KeyMasterName),
			Workplace:  getString(v, KeyMasterWorkplace),
		},
		Validation: records.Fields{
			Identifier: getString(v, KeyValidationIdentifier),
			Name:       getString(v, KeyValidationName),
			Workplace:  getString(v, KeyValidationWorkplace),
		},
	}
}

// MergeMapping fills the empty columns of flags from configured. Flags win.
func MergeMapping(flags, configured records.Mapping) records.Mapping {
	return records.Mapping{
		Master:     flags.Master.Merge(configured.Master),
		Validation: flags.Validation.Merge(configured.Validation),
	}
}
