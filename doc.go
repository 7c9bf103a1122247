// Package obofoundry provides a typed model of the OBO Foundry ontology
// registry and a strict mapper from the registry's JSON or YAML document
// onto it.
//
// - Entities (Registry, Ontology, Product, Dependency, ...) with closed enums and an absolute URL type
// - A schema mapper that rejects unknown keys, honours legacy key aliases and defaults, and reports every mismatch as Issues (JSON Pointer, code, message)
// - Decoder-agnostic token sources (Source) with duplicate-key/depth/size enforcement
// - A canonical encoder (EncodeValue, MarshalJSON, MarshalYAML) whose output decodes back to an equal Registry
//
// Fetching the registry is left to the caller; the core performs no I/O.
//
// Typical usage:
//
//	reg, err := obofoundry.ParseYAML(ctx, data)
//	if iss, ok := obofoundry.AsIssues(err); ok {
//		for _, it := range iss {
//			fmt.Println(it.Path, it.Code, it.Message)
//		}
//	}
//	for _, o := range reg.Ontologies {
//		fmt.Println(o.ID, o.ActivityStatus)
//	}
package obofoundry
