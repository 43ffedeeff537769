// Package export serializes derived conclusions as RDF using the
// termlogic logic vocabulary, with PROV-O and CCO alignment.
package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/c360studio/termlogic/graph"
	"github.com/c360studio/termlogic/syllogism"
	"github.com/c360studio/termlogic/vocabulary/logic"
)

// Profile determines which ontology type assertions are included.
type Profile string

const (
	// ProfileMinimal includes logic and PROV-O type assertions.
	ProfileMinimal Profile = "minimal"

	// ProfileCCO adds CCO type assertions to the minimal profile.
	ProfileCCO Profile = "cco"
)

// External ontology IRIs used in type assertions.
const (
	provEntity               = "http://www.w3.org/ns/prov#Entity"
	ccoInformationContentIRI = "http://www.ontologyrepository.com/CommonCoreOntologies/InformationContentEntity"
	rdfType                  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
)

// triple is a predicate/object pair attached to an entity.
type triple struct {
	predicate string
	object    any
}

// entity is an exportable RDF resource.
type entity struct {
	iri     string
	classes []string
	triples []triple
}

// Exporter accumulates derivations and serializes them to RDF.
type Exporter struct {
	profile  Profile
	entities []entity
	prefixes map[string]string
}

// NewExporter creates an exporter with the specified profile.
func NewExporter(profile Profile) *Exporter {
	return &Exporter{
		profile:  profile,
		entities: make([]entity, 0),
		prefixes: defaultPrefixes(),
	}
}

// defaultPrefixes returns the standard namespace prefixes.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":    "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs":   "http://www.w3.org/2000/01/rdf-schema#",
		"xsd":    "http://www.w3.org/2001/XMLSchema#",
		"prov":   "http://www.w3.org/ns/prov#",
		"cco":    "http://www.ontologyrepository.com/CommonCoreOntologies/",
		"logic":  logic.Namespace,
		"entity": logic.EntityNamespace,
	}
}

// AddDerivation adds a conclusion with its premise pair. Both premises
// are exported as entities and linked from the conclusion.
func (e *Exporter) AddDerivation(concl syllogism.Conclusion, major, minor syllogism.Premise) {
	conclusionIRI := entityIDToIRI(graph.ConclusionEntityID(concl))
	majorIRI := entityIDToIRI(graph.PremiseEntityID(major))
	minorIRI := entityIDToIRI(graph.PremiseEntityID(minor))

	e.entities = append(e.entities,
		entity{
			iri:     conclusionIRI,
			classes: e.classesFor(logic.ClassConclusion),
			triples: []triple{
				{logic.PropSubjectTerm, string(concl.Subject)},
				{logic.PropPredicateTerm, string(concl.Predicate)},
				{logic.Namespace + "quantifier", string(concl.Type.Quantifier)},
				{logic.Namespace + "polarity", string(concl.Type.Polarity)},
				{logic.PropFigure, string(concl.Figure)},
				{logic.PropDerivedFrom, iriRef(majorIRI)},
				{logic.PropDerivedFrom, iriRef(minorIRI)},
			},
		},
		premiseEntity(majorIRI, major, e.classesFor(logic.ClassPremise)),
		premiseEntity(minorIRI, minor, e.classesFor(logic.ClassPremise)),
	)
}

func premiseEntity(iri string, p syllogism.Premise, classes []string) entity {
	triples := []triple{
		{logic.Namespace + "premiseCategory", string(p.Category)},
		{logic.Namespace + "quantifier", string(p.Type.Quantifier)},
		{logic.Namespace + "polarity", string(p.Type.Polarity)},
	}
	if middle, ok := p.Middle(); ok {
		triples = append(triples, triple{logic.PropMiddleTerm, string(middle)})
	}
	return entity{
		iri:     iri,
		classes: classes,
		triples: triples,
	}
}

// classesFor returns the type assertions for a logic class under the
// current profile.
func (e *Exporter) classesFor(logicClass string) []string {
	classes := []string{logicClass, provEntity}
	if e.profile == ProfileCCO {
		classes = append(classes, ccoInformationContentIRI)
	}
	return classes
}

// Export serializes all accumulated derivations to the given format.
func (e *Exporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// toTurtle serializes to Turtle format.
func (e *Exporter) toTurtle() string {
	var sb strings.Builder

	// Write prefixes in sorted order for stable output
	keys := make([]string, 0, len(e.prefixes))
	for k := range e.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, prefix := range keys {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, e.prefixes[prefix]))
	}
	sb.WriteString("\n")

	for _, ent := range e.entities {
		writeEntityTurtle(&sb, ent)
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeEntityTurtle(sb *strings.Builder, ent entity) {
	sb.WriteString(fmt.Sprintf("<%s>\n", ent.iri))

	for i, classIRI := range ent.classes {
		sb.WriteString(fmt.Sprintf("    a <%s>", classIRI))
		if i < len(ent.classes)-1 || len(ent.triples) > 0 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}

	for i, tr := range ent.triples {
		sb.WriteString(fmt.Sprintf("    <%s> %s", tr.predicate, formatObject(tr.object)))
		if i < len(ent.triples)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

// toNTriples serializes to N-Triples format.
func (e *Exporter) toNTriples() string {
	var sb strings.Builder

	for _, ent := range e.entities {
		for _, classIRI := range ent.classes {
			sb.WriteString(fmt.Sprintf("<%s> <%s> <%s> .\n", ent.iri, rdfType, classIRI))
		}
		for _, tr := range ent.triples {
			sb.WriteString(fmt.Sprintf("<%s> <%s> %s .\n", ent.iri, tr.predicate, formatObjectNTriples(tr.object)))
		}
	}

	return sb.String()
}

// iriRef marks an object as an IRI reference rather than a literal.
type iriRef string

// entityIDToIRI converts a dotted entity ID to an IRI.
// Example: "termlogic.local.logic.conclusion.barbara.greek.mortal"
//       -> "https://termlogic.dev/entity/logic/conclusion/barbara/greek/mortal"
func entityIDToIRI(entityID string) string {
	parts := strings.Split(entityID, ".")
	if len(parts) < 5 {
		// Not enough parts, use as-is
		return logic.EntityNamespace + entityID
	}

	// Skip org (0), context (1), domain (2); keep type (3) and instance (4+)
	entityType := parts[3]
	instance := strings.Join(parts[4:], "/")

	return fmt.Sprintf("%s%s/%s", logic.EntityNamespace, entityType, instance)
}

// formatObject formats an object value for Turtle output.
func formatObject(obj any) string {
	switch v := obj.(type) {
	case iriRef:
		return fmt.Sprintf("<%s>", string(v))
	case string:
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case time.Time:
		return fmt.Sprintf("\"%s\"^^xsd:dateTime", v.Format(time.RFC3339))
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^xsd:integer", v)
	case bool:
		return fmt.Sprintf("\"%t\"^^xsd:boolean", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// formatObjectNTriples formats an object value for N-Triples output.
func formatObjectNTriples(obj any) string {
	switch v := obj.(type) {
	case iriRef:
		return fmt.Sprintf("<%s>", string(v))
	case string:
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case time.Time:
		return fmt.Sprintf("\"%s\"^^<http://www.w3.org/2001/XMLSchema#dateTime>", v.Format(time.RFC3339))
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^<http://www.w3.org/2001/XMLSchema#integer>", v)
	case bool:
		return fmt.Sprintf("\"%t\"^^<http://www.w3.org/2001/XMLSchema#boolean>", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// escapeString escapes special characters for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
