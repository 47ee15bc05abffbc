package signature

import "github.com/toyz/textsig/internal/models"

// Classify returns the implicit receiver that prefixes a callable's visible
// parameters for the given role. Free functions and static methods have none.
func Classify(role models.Role) models.ReceiverKind {
	switch role {
	case models.RoleModuleFunction:
		return models.ReceiverModule
	case models.RoleInstanceMethod:
		return models.ReceiverInstance
	case models.RoleClassMethod:
		return models.ReceiverClass
	default:
		return models.ReceiverNone
	}
}
