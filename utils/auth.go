package utils

import (
	"log"

	"clubkeeper/model"
	"clubkeeper/utils/database"

	"github.com/bwmarrin/discordgo"
)

// Permission levels
const (
	DeveloperPermission = "developer"
	AdminPermission     = "admin"
	GuestPermission     = "guest"
)

// contains checks if a slice of strings contains an element.
func contains(slice []string, item string) bool {
	for _, a := range slice {
		if a == item {
			return true
		}
	}
	return false
}

// CheckPermission resolves the permission level for a guild member.
// Resolution order: developer user IDs, Discord administrator/manage-server
// permissions, then the guild's allow-list (users first, then roles).
func CheckPermission(member *discordgo.Member, userID string, developerUserIDs []string, allow model.Allowlist) string {
	if contains(developerUserIDs, userID) {
		return DeveloperPermission
	}
	if member == nil {
		return GuestPermission
	}

	if member.Permissions&(discordgo.PermissionAdministrator|discordgo.PermissionManageServer) != 0 {
		return AdminPermission
	}

	if contains(allow.UserIDs, userID) {
		return AdminPermission
	}
	for _, roleID := range member.Roles {
		if contains(allow.RoleIDs, roleID) {
			return AdminPermission
		}
	}

	return GuestPermission
}

// IsAuthorized reports whether the member may run admin commands.
func IsAuthorized(member *discordgo.Member, userID string, developerUserIDs []string, allow model.Allowlist) bool {
	return CheckPermission(member, userID, developerUserIDs, allow) != GuestPermission
}

// RequireAdmin gates a management command. When the caller is not
// authorized the ephemeral refusal is sent here and false is returned.
func RequireAdmin(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.GuildID == "" {
		SendErrorResponse(s, i, "This command only works inside a server.")
		return false
	}
	allow, err := database.GetAllowlist(b.GetDB(), i.GuildID)
	if err != nil {
		log.Printf("auth: %v", err)
		SendErrorResponse(s, i, "Could not check permissions.")
		return false
	}
	if !IsAuthorized(i.Member, InteractionUserID(i), b.GetConfig().DeveloperUserIDs, allow) {
		SendErrorResponse(s, i, "You are not allowed to use this command.")
		return false
	}
	return true
}
