/*
Package ports defines the driven ports (interfaces) of the medcalc service.

These interfaces decouple the registry and dispatcher from the places metadata
is read from and the way calculator implementations are located.

# Key Interfaces

  - MetadataSource: yields the raw path index and field-mapping index (file, memory, Redis).
  - Resolver: locates a calculator implementation by module path and function name.
*/
package ports
