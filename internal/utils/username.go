package utils

import (
	"fmt"
	"strings"
)

// DeriveUsername builds a username candidate from the local part of an
// email address. When the candidate is taken, callers get successive
// numeric-suffix variants via the attempt counter (attempt 0 yields the
// bare local part, attempt 1 yields "<local>1", and so on).
func DeriveUsername(email string, attempt int) string {
	base := email
	if at := strings.Index(email, "@"); at > 0 {
		base = email[:at]
	}
	base = strings.ToLower(strings.TrimSpace(base))
	if base == "" {
		base = "user"
	}
	if attempt == 0 {
		return base
	}
	return fmt.Sprintf("%s%d", base, attempt)
}
