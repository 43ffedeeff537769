package inference

import (
	"fmt"
	"reflect"

	"github.com/c360studio/semstreams/component"
)

// inferenceSchema defines the configuration schema.
var inferenceSchema = component.GenerateConfigSchema(reflect.TypeOf(Config{}))

// Config holds configuration for the inference processor.
type Config struct {
	Ports              *component.PortConfig `json:"ports" schema:"type:ports,description:Port configuration,category:basic"`
	PublishConclusions bool                  `json:"publish_conclusions" schema:"type:boolean,description:Publish derived conclusions to the knowledge graph,category:basic,default:true"`
	TimeoutSecs        int                   `json:"timeout_secs" schema:"type:integer,description:Request timeout in seconds,category:basic,default:30"`
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.TimeoutSecs < 0 {
		return fmt.Errorf("timeout_secs must be non-negative")
	}
	return nil
}

// DefaultConfig returns the default configuration for the inference processor.
func DefaultConfig() Config {
	return Config{
		Ports: &component.PortConfig{
			Inputs: []component.PortDefinition{
				{
					Name:        "infer_requests",
					Type:        "nats",
					Subject:     "logic.infer",
					Required:    true,
					Description: "Inference request/reply subject",
				},
			},
			Outputs: []component.PortDefinition{
				{
					Name:        "conclusion_entities",
					Type:        "nats",
					Subject:     "graph.ingest.entity",
					Required:    false,
					Description: "Derived conclusions published as graph entities",
				},
			},
		},
		PublishConclusions: true,
		TimeoutSecs:        30,
	}
}
