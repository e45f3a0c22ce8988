package profile

import (
	"fmt"
	"regexp"
)

var nameRegexp = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// ValidateName checks that name can be used as a profile: a directory under
// ~/.huddle/profiles holding one daemon's socket, lock, database and logs.
// Names are lower-case so two profiles never collide on case-insensitive
// filesystems.
func ValidateName(name string) error {
	if !nameRegexp.MatchString(name) {
		return fmt.Errorf("invalid profile name %q: must match %s", name, nameRegexp)
	}
	return nil
}
