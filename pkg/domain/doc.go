/*
Package domain contains the core models of the medcalc catalog.

It defines calculator definitions, the field translation they perform, the
measurement and flag encodings calculators receive, and the error taxonomy
shared by the registry, dispatcher and transport adapters. This package is
kept pure and free of I/O.

# Key Entities

  - CalculatorDefinition: one callable calculator (identity, slug, module locator, field map).
  - Measurement: a bare number or a value+unit pair, with per-family normalization.
  - Response: the normalized answer assembled by the dispatcher.
*/
package domain
