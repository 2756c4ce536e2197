// Package byulnav is the root of this module and holds only
// VersionString. The grid, route, and planner code lives in the
// subpackages: navgrid for terrain, dstarlite for incremental
// replanning, finder for one-shot static search, and obstacle/config
// as their supporting collaborators.
package byulnav

// version is bumped by hand on release.
const version = "0.1.0"

// VersionString returns the module's semantic version.
func VersionString() string {
	return version
}
