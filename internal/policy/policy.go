// Package policy derives UI-visible capabilities from the current
// authentication snapshot. Pure functions; decisions read only the
// Admin flag and must be re-evaluated on every store emission.
package policy

import "session-booking-client/internal/model"

// CanManageSessions reports whether the viewer may create, edit or
// delete sessions.
func CanManageSessions(info model.SessionInformation, present bool) bool {
	return present && info.Admin
}

// CanDeleteOwnAccount reports whether the viewer may delete their own
// account. Administrators manage accounts elsewhere and are never
// offered self-service deletion.
func CanDeleteOwnAccount(info model.SessionInformation, present bool) bool {
	return present && !info.Admin
}
