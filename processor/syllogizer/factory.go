package syllogizer

import (
	"fmt"

	"github.com/c360studio/semstreams/component"
)

// RegistryInterface defines the minimal interface needed for registration.
type RegistryInterface interface {
	RegisterWithConfig(component.RegistrationConfig) error
}

// Register registers the syllogizer processor with the given registry.
func Register(registry RegistryInterface) error {
	if registry == nil {
		return fmt.Errorf("registry cannot be nil")
	}
	return registry.RegisterWithConfig(component.RegistrationConfig{
		Name:        "syllogizer",
		Factory:     NewComponent,
		Schema:      syllogizerSchema,
		Type:        "processor",
		Protocol:    "logic",
		Domain:      "inference",
		Description: "Stream consumer deriving conclusions from premise pair events",
		Version:     "1.0.0",
	})
}
