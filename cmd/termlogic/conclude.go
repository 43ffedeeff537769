package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/termlogic/export"
	"github.com/c360studio/termlogic/syllogism"
)

// concludeCmd runs a single inference locally, without NATS. Useful for
// checking a premise pair from the shell before wiring it into a stream.
func concludeCmd() *cobra.Command {
	var (
		majorTerms string
		majorType  string
		minorTerms string
		minorType  string
		format     string
		profile    string
	)

	cmd := &cobra.Command{
		Use:   "conclude",
		Short: "Resolve a premise pair locally",
		Long: `Resolve a categorical premise pair against the figure table and print
the conclusion as JSON, or as RDF with --format turtle or --format ntriples.

Terms are given as ordered role=value pairs, types as quantifier,polarity:

  termlogic conclude \
    --major "middle=man,predicate=mortal"  --major-type "universal,affirmative" \
    --minor "subject=greek,middle=man"     --minor-type "universal,affirmative"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			major, err := buildPremise(syllogism.CategoryMajor, majorTerms, majorType)
			if err != nil {
				return fmt.Errorf("major premise: %w", err)
			}

			minor, err := buildPremise(syllogism.CategoryMinor, minorTerms, minorType)
			if err != nil {
				return fmt.Errorf("minor premise: %w", err)
			}

			conclusion, err := syllogism.Conclude(major, minor)
			if err != nil {
				return err
			}

			if format != "json" {
				rdfFormat, err := export.ParseFormat(format)
				if err != nil {
					return err
				}
				exporter := export.NewExporter(export.Profile(profile))
				exporter.AddDerivation(conclusion, major, minor)
				out, err := exporter.Export(rdfFormat)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			out, err := json.MarshalIndent(conclusion, "", "  ")
			if err != nil {
				return fmt.Errorf("encode conclusion: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&majorTerms, "major", "", "Major premise terms as role=value,role=value (required)")
	cmd.Flags().StringVar(&majorType, "major-type", "", "Major premise type as quantifier,polarity (required)")
	cmd.Flags().StringVar(&minorTerms, "minor", "", "Minor premise terms as role=value,role=value (required)")
	cmd.Flags().StringVar(&minorType, "minor-type", "", "Minor premise type as quantifier,polarity (required)")
	cmd.Flags().StringVar(&format, "format", "json", "Output format (json, turtle, ntriples)")
	cmd.Flags().StringVar(&profile, "profile", string(export.ProfileMinimal), "RDF ontology profile (minimal, cco)")
	_ = cmd.MarkFlagRequired("major")
	_ = cmd.MarkFlagRequired("major-type")
	_ = cmd.MarkFlagRequired("minor")
	_ = cmd.MarkFlagRequired("minor-type")

	return cmd
}

func buildPremise(category syllogism.Category, terms, propType string) (syllogism.Premise, error) {
	bindings, err := parseBindingPair(terms)
	if err != nil {
		return syllogism.Premise{}, err
	}

	pt, err := parsePropositionType(propType)
	if err != nil {
		return syllogism.Premise{}, err
	}

	return syllogism.NewPremise(category, bindings, pt)
}

// parseBindingPair parses "role=value,role=value" into an ordered pair.
// Order matters: it determines which figure the premise can match.
func parseBindingPair(s string) (syllogism.BindingPair, error) {
	var pair syllogism.BindingPair

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return pair, fmt.Errorf("expected two role=value pairs, got %q", s)
	}

	for i, part := range parts {
		role, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found || role == "" || value == "" {
			return pair, fmt.Errorf("malformed term binding %q, expected role=value", part)
		}
		pair[i] = syllogism.TermBinding{
			Role: syllogism.TermRole(strings.TrimSpace(role)),
			Term: syllogism.Term(strings.TrimSpace(value)),
		}
	}

	return pair, nil
}

// parsePropositionType parses "quantifier,polarity" such as
// "universal,affirmative" or "particular,negative".
func parsePropositionType(s string) (syllogism.PropositionType, error) {
	quantifier, polarity, found := strings.Cut(s, ",")
	if !found {
		return syllogism.PropositionType{}, fmt.Errorf("expected quantifier,polarity, got %q", s)
	}

	pt := syllogism.PropositionType{
		Quantifier: syllogism.Quantifier(strings.TrimSpace(quantifier)),
		Polarity:   syllogism.Polarity(strings.TrimSpace(polarity)),
	}
	if !pt.Valid() {
		return syllogism.PropositionType{}, fmt.Errorf("unknown proposition type %q", s)
	}

	return pt, nil
}
