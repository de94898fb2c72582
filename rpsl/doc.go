// Package rpsl parses the Routing Policy Specification Language, the
// line-oriented "name: value" text format served by Internet number
// registries in whois responses and route database dumps.
//
// The parser handles the attribute grammar only: attribute names, values,
// the continuation mechanism that lets one attribute span several physical
// lines, and %-prefixed server messages. It does not interpret attribute
// semantics; an "origin" value is not checked to be a valid AS number.
//
// The package is structured in three layers:
//
//   - scanner: tracks a byte position with line/column information over
//     the raw input.
//   - grammar: consumes scanner input according to the RPSL lexical rules
//     and reports positional syntax errors.
//   - data model: the output types (Name, Value, Attribute, Object) with
//     validated constructors for programmatic use.
//
// Usage:
//
//	attr, rest, err := rpsl.ParseAttribute("import:         from AS12 accept AS12\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(attr.Name, attr.Value.Len(), len(rest))
//
// Parsed values reference the input string directly; no copies are made
// while parsing.
package rpsl
