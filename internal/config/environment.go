package config

import (
	"strings"
)

// Environment is the deployment stage named by app.env.
type Environment int32

const (
	UNDEFINED_ENV Environment = iota
	LOCAL_ENV
	DEV_ENV
	UAT_ENV
	PROD_ENV
)

var environmentNames = map[string]Environment{
	"local":       LOCAL_ENV,
	"dev":         DEV_ENV,
	"development": DEV_ENV,
	"uat":         UAT_ENV,
	"staging":     UAT_ENV,
	"prod":        PROD_ENV,
	"production":  PROD_ENV,
}

func StringToEnvironment(s string) Environment {
	return environmentNames[strings.ToLower(strings.TrimSpace(s))]
}

func (e Environment) String() string {
	switch e {
	case LOCAL_ENV:
		return "local"
	case DEV_ENV:
		return "dev"
	case UAT_ENV:
		return "uat"
	case PROD_ENV:
		return "prod"
	default:
		return "undefined"
	}
}

// Environment resolves app.env; an unset or unknown value is UNDEFINED_ENV and behaves like local.
func (a App) Environment() Environment {
	return StringToEnvironment(a.Env)
}
