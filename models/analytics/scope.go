package analytics

import "bitbucket.org/gradways/crm_backend/models"

// RoleScope decides which client rows an aggregation may see. Only counsellor
// scope restricts rows (to that counsellor's clients); admin and manager see
// every client. The manager-level team restriction applies to the counsellor
// roster in reports, never to client rows.
type RoleScope struct {
	Role         models.Role
	CounsellorId int
}

// Restricted reports whether the scope narrows client rows to one counsellor.
func (s RoleScope) Restricted() bool {
	return s.CounsellorId > 0 &&
		(s.Role == models.RoleCounsellor || s.Role == "")
}

// AdminScope sees every client.
func AdminScope() RoleScope {
	return RoleScope{Role: models.RoleAdmin}
}

// CounsellorScope narrows every aggregate to one counsellor's client base.
// The leaderboard uses it to compute per-counsellor figures regardless of the
// caller's own role.
func CounsellorScope(counsellorId int) RoleScope {
	return RoleScope{Role: models.RoleCounsellor, CounsellorId: counsellorId}
}

// ScopeFor maps an authenticated actor to the row scope their role allows.
func ScopeFor(role models.Role, actorId int) RoleScope {
	if role == models.RoleCounsellor {
		return CounsellorScope(actorId)
	}
	return RoleScope{Role: role}
}
