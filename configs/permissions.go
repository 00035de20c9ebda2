package configs

import (
	"github.com/clbasaran/backend-ozmevsim/types"
)

type Permission string

const (
	PermissionCreateContent  Permission = "create-content"
	PermissionEditContent    Permission = "edit-content"
	PermissionDeleteContent  Permission = "delete-content"
	PermissionManageContacts Permission = "manage-contacts"
	PermissionUploadMedia    Permission = "upload-media"
	PermissionManageCache    Permission = "manage-cache"
	PermissionTranslate      Permission = "translate-content"
	PermissionManageUsers    Permission = "manage-users"
)

var RolePermissions = map[types.Role][]Permission{
	types.RoleUser: {},
	types.RoleEditor: {
		PermissionCreateContent,
		PermissionEditContent,
		PermissionUploadMedia,
		PermissionTranslate,
	},
	types.RoleAdmin: {
		PermissionCreateContent,
		PermissionEditContent,
		PermissionDeleteContent,
		PermissionManageContacts,
		PermissionUploadMedia,
		PermissionManageCache,
		PermissionTranslate,
		PermissionManageUsers,
	},
}
