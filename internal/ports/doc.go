// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [ImageSource]: Enumerates and reads candidate image files in the target directory
//   - [MetadataReader]: Reads orientation metadata from encoded image bytes
//   - [ImageCodec]: Decodes source images and encodes composited output
//   - [OutputStore]: Prepares the output folder and writes result files
//   - [ReportRepository]: Persists the run report
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with the file
// system, goexif, and the imaging codec stack.
package ports
