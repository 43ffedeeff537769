package syllogizer

import (
	"fmt"
	"reflect"

	"github.com/c360studio/semstreams/component"
)

// syllogizerSchema defines the configuration schema.
var syllogizerSchema = component.GenerateConfigSchema(reflect.TypeOf(Config{}))

// Config holds configuration for the syllogizer processor.
type Config struct {
	Ports          *component.PortConfig `json:"ports" schema:"type:ports,description:Port configuration,category:basic"`
	StreamName     string                `json:"stream_name" schema:"type:string,description:JetStream stream holding premise events,category:basic,default:LOGIC"`
	ConsumerName   string                `json:"consumer_name" schema:"type:string,description:Durable consumer name,category:basic,default:syllogizer"`
	TriggerSubject string                `json:"trigger_subject" schema:"type:string,description:Subject filter for premise pair events,category:basic,default:logic.premises.pair"`
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.StreamName == "" {
		return fmt.Errorf("stream_name is required")
	}
	if c.ConsumerName == "" {
		return fmt.Errorf("consumer_name is required")
	}
	return nil
}

// DefaultConfig returns the default configuration for the syllogizer.
func DefaultConfig() Config {
	return Config{
		Ports: &component.PortConfig{
			Inputs: []component.PortDefinition{
				{
					Name:        "premise_pairs",
					Type:        "nats",
					Subject:     "logic.premises.pair",
					Required:    true,
					Description: "Premise pair events to resolve",
				},
			},
			Outputs: []component.PortDefinition{
				{
					Name:        "conclusion_entities",
					Type:        "nats",
					Subject:     "graph.ingest.entity",
					Required:    true,
					Description: "Derived conclusions published as graph entities",
				},
			},
		},
		StreamName:     "LOGIC",
		ConsumerName:   "syllogizer",
		TriggerSubject: "logic.premises.pair",
	}
}
