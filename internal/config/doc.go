// Package config defines the settings shared by alarm-server and alarmctl and
// provides helpers to load, validate and save them in YAML format.
package config
