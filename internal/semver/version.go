package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Next returns the version that follows current for the given release type.
// A leading "v" on current is accepted and dropped and components beyond the
// third are ignored. An unrecognized release type is treated as Patch.
func Next(current string, t ReleaseType) string {
	major, minor, patch := Components(current)

	switch t {
	case Major:
		return format(major+1, 0, 0)
	case Minor:
		return format(major, minor+1, 0)
	default:
		return format(major, minor, patch+1)
	}
}

// Components splits a version string into its major, minor and patch
// numbers. Missing or non-numeric components are zero.
func Components(version string) (major, minor, patch int) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	parts := strings.Split(version, ".")

	nums := [3]int{}
	for i := 0; i < len(nums) && i < len(parts); i++ {
		if n, err := strconv.Atoi(parts[i]); err == nil && n >= 0 {
			nums[i] = n
		}
	}
	return nums[0], nums[1], nums[2]
}

func format(major, minor, patch int) string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
