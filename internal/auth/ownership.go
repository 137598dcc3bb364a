package auth

// CanModify decides whether the caller may mutate a resource owned by
// ownerUserID. The comparison is keyed on the immutable user ID, never the
// display nickname. Pure and synchronous; resource lookup happens before
// this check, at the caller.
func CanModify(id Identity, ownerUserID uint) bool {
	if id.IsZero() {
		return false
	}
	return id.UserID == ownerUserID
}
