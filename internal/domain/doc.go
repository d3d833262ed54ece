// Package domain contains the core domain entities and value objects for logostamp.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (image codecs, file system, logging)
// and contains only the placement rules.
//
// # Entities
//
//   - [Metadata]: Orientation facts read from an image (EXIF tag, EXIF pixel size)
//   - [Resolution]: The outcome of orientation resolution for one image
//   - [PlacementPlan]: Scaled watermark size and its offset inside the base image
//   - [FileResult]: The outcome of processing one file
//   - [Report]: The summary of a batch run
//
// # Placement Rules
//
// The watermark width is a fixed fraction of the display-oriented base width:
// 0.5 for rotated images, 0.3 otherwise. Its height follows from the watermark's
// native aspect ratio. The watermark sits in the bottom-right corner, inset by a
// margin that is a fraction of the base width on both axes.
package domain
