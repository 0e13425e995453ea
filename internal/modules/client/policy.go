package client

import "favoritesapi/internal/domain"

// Capability names an action on a specific client record. Listing all
// clients and creating one are deliberately not covered here; only
// operations that target a concrete record go through the policy.
type Capability string

const (
	CapabilityView   Capability = "view"
	CapabilityUpdate Capability = "update"
	CapabilityDelete Capability = "delete"
)

// Allowed decides whether the acting identity may exercise the
// capability on the target client. The rule is the same for every
// capability: managers may act on any record, everyone else only on
// their own.
func Allowed(actorID int64, actorRole domain.Role, target *domain.Client, capability Capability) bool {
	switch capability {
	case CapabilityView, CapabilityUpdate, CapabilityDelete:
		return actorRole == domain.RoleManager || actorID == target.ID
	default:
		return false
	}
}
