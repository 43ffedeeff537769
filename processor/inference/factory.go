package inference

import (
	"fmt"

	"github.com/c360studio/semstreams/component"
)

// RegistryInterface defines the minimal interface needed for registration.
type RegistryInterface interface {
	RegisterWithConfig(component.RegistrationConfig) error
}

// Register registers the inference processor with the given registry.
func Register(registry RegistryInterface) error {
	if registry == nil {
		return fmt.Errorf("registry cannot be nil")
	}
	return registry.RegisterWithConfig(component.RegistrationConfig{
		Name:        "inference",
		Factory:     NewComponent,
		Schema:      inferenceSchema,
		Type:        "processor",
		Protocol:    "logic",
		Domain:      "inference",
		Description: "Request/reply service resolving premise pairs against the syllogistic figure table",
		Version:     "1.0.0",
	})
}
