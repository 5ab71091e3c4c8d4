// ABOUTME: Version constants for server-clock
// ABOUTME: Used by CLI banners and the reference server identity
package version

const (
	// Version is the current release version.
	Version = "0.1.0"

	// Product is the product name reported by CLIs.
	Product = "server-clock"

	// Manufacturer identifies the project.
	Manufacturer = "sikaipeng"
)
