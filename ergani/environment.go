package ergani

import (
	"fmt"
	"strings"
)

type Environment int

const (
	Trial Environment = iota
	Production
)

func (e Environment) BaseURL() string {
	switch e {
	case Trial:
		return "https://trialeservices.yeka.gr/WebServicesAPI/api"
	case Production:
		return "https://eservices.yeka.gr/WebServicesAPI/api"
	}
	panic("Invalid environment")
}

func (e Environment) Name() string {
	switch e {
	case Trial:
		return "trial"
	case Production:
		return "production"
	}
	panic("Invalid environment")
}

func (e *Environment) UnmarshalText(text []byte) error {
	val := strings.ToLower(strings.TrimSpace(string(text)))

	switch val {
	case "trial":
		*e = Trial
	case "production", "prod":
		*e = Production
	default:
		return fmt.Errorf("invalid ERGANI_ENV: %q (allowed: trial, production)", val)
	}
	return nil
}
