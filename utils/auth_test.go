package utils

import (
	"testing"

	"clubkeeper/model"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCheckPermission(t *testing.T) {
	allow := model.Allowlist{
		RoleIDs: []string{"role-mod"},
		UserIDs: []string{"user-trusted"},
	}
	developers := []string{"dev-1"}

	tests := []struct {
		name   string
		member *discordgo.Member
		userID string
		want   string
	}{
		{
			name:   "developer bypasses everything",
			member: nil,
			userID: "dev-1",
			want:   DeveloperPermission,
		},
		{
			name:   "nil member is guest",
			member: nil,
			userID: "someone",
			want:   GuestPermission,
		},
		{
			name:   "administrator permission",
			member: &discordgo.Member{Permissions: discordgo.PermissionAdministrator},
			userID: "someone",
			want:   AdminPermission,
		},
		{
			name:   "manage server permission",
			member: &discordgo.Member{Permissions: discordgo.PermissionManageServer},
			userID: "someone",
			want:   AdminPermission,
		},
		{
			name:   "allow-listed user",
			member: &discordgo.Member{},
			userID: "user-trusted",
			want:   AdminPermission,
		},
		{
			name:   "allow-listed role",
			member: &discordgo.Member{Roles: []string{"role-other", "role-mod"}},
			userID: "someone",
			want:   AdminPermission,
		},
		{
			name:   "no match is guest",
			member: &discordgo.Member{Roles: []string{"role-other"}},
			userID: "someone",
			want:   GuestPermission,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPermission(tt.member, tt.userID, developers, allow))
		})
	}
}

func TestIsAuthorized(t *testing.T) {
	allow := model.Allowlist{RoleIDs: []string{"r1"}}
	assert.True(t, IsAuthorized(&discordgo.Member{Roles: []string{"r1"}}, "u", nil, allow))
	assert.False(t, IsAuthorized(&discordgo.Member{}, "u", nil, allow))
}
