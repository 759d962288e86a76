// Package authz centralizes the authorization matrix as pure predicates.
// Services call these instead of repeating ad-hoc boolean logic per entity.
package authz

import "github.com/hitforum/forum-system/internal/core/domain"

// moderationRoles may remove content they do not own.
var moderationRoles = map[domain.Role]struct{}{
	domain.RoleAdmin:     {},
	domain.RoleModerator: {},
}

// CanEditOwned reports whether an actor may edit an owned resource
// (post or comment). Only the original author qualifies, role is irrelevant.
func CanEditOwned(actorIsOwner bool) bool {
	return actorIsOwner
}

// CanRemoveOwned reports whether an actor may remove an owned resource:
// the owner always, moderation roles regardless of ownership.
func CanRemoveOwned(actorRole domain.Role, actorIsOwner bool) bool {
	if actorIsOwner {
		return true
	}
	_, ok := moderationRoles[actorRole]
	return ok
}

// CanEditUser reports whether an editor may replace a user record.
// Admins always may; otherwise the editor must be the target and have
// presented the target's current password.
func CanEditUser(editorRole domain.Role, editorIsTarget, oldPasswordVerifies bool) bool {
	if editorRole == domain.RoleAdmin {
		return true
	}
	return editorIsTarget && oldPasswordVerifies
}

// CanRemoveUser mirrors CanEditUser for account deletion.
func CanRemoveUser(removerRole domain.Role, removerIsTarget, passwordVerifies bool) bool {
	if removerRole == domain.RoleAdmin {
		return true
	}
	return removerIsTarget && passwordVerifies
}
