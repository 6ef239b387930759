package onboarding

import (
	"errors"
	"fmt"
	"log"

	"clubkeeper/brawlapi"
	"clubkeeper/model"
	"clubkeeper/tasks"
	"clubkeeper/utils"
	"clubkeeper/utils/database"

	"github.com/bwmarrin/discordgo"
)

// HandleVerify links a Brawl Stars account to the caller: the tag is
// validated, saved, and if the player is already in a tracked club the
// member role and nickname are applied immediately.
func HandleVerify(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		utils.SendErrorResponse(s, i, "Run this in the server you want to verify for.")
		return
	}

	sub := i.ApplicationCommandData().Options[0]
	opts := utils.OptionMap(sub.Options)
	tag := brawlapi.NormalizeTag(utils.OptionString(opts, "tag"))
	userID := utils.InteractionUserID(i)

	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("onboarding: deferring response: %v", err)
		return
	}

	p, err := b.GetAPI().Player(tag)
	if err != nil {
		log.Printf("onboarding: verifying %s: %v", brawlapi.PrettyTag(tag), err)
		utils.SendFollowUpError(s, i.Interaction, utils.APIErrorMessage(err, "Player"))
		return
	}

	// Someone else already claimed this tag.
	if owner, err := database.FindUserByTag(b.GetDB(), tag); err == nil && owner != "" && owner != userID {
		utils.SendFollowUpError(s, i.Interaction, "That tag is already linked to another member.")
		return
	}

	if err := database.AddUserTag(b.GetDB(), userID, tag); err != nil {
		switch {
		case errors.Is(err, database.ErrTagExists):
			// Re-verifying an already saved tag is fine.
		case errors.Is(err, database.ErrTagLimit):
			utils.SendFollowUpError(s, i.Interaction,
				fmt.Sprintf("You can save at most %d tags. Remove one first with `/bs tags remove`.", model.MaxSavedTags))
			return
		default:
			log.Printf("onboarding: %v", err)
			utils.SendFollowUpError(s, i.Interaction, "Could not save the tag.")
			return
		}
	}

	playerClub := brawlapi.NormalizeTag(p.Club.Tag)
	if err := database.CacheUserPlayer(b.GetDB(), userID, p.Name, playerClub); err != nil {
		log.Printf("onboarding: %v", err)
	}

	msg := fmt.Sprintf("✅ Verified **%s** (`%s`).", p.Name, brawlapi.PrettyTag(tag))

	if playerClub != "" {
		club, err := database.GetClub(b.GetDB(), i.GuildID, playerClub)
		if err == nil {
			applyMembership(b, s, i.GuildID, userID, p.Name, club)
			msg += fmt.Sprintf(" You are in **%s**; roles and nickname applied.", club.Name)
		} else if !errors.Is(err, database.ErrClubNotTracked) {
			log.Printf("onboarding: %v", err)
		}
	}

	utils.SendFollowUp(s, i.Interaction, msg)
}

func applyMembership(b model.Bot, s *discordgo.Session, guildID, userID, ign string, club model.Club) {
	if club.RoleID != "" {
		if err := s.GuildMemberRoleAdd(guildID, userID, club.RoleID); err != nil {
			log.Printf("onboarding: assigning role %s: %v", club.RoleID, err)
		}
	}

	gs, err := database.GetGuildSettings(b.GetDB(), guildID)
	if err != nil {
		log.Printf("onboarding: %v", err)
		return
	}
	nick := tasks.FormatNick(gs.NickFormat, ign, club.Name)
	if err := s.GuildMemberNickname(guildID, userID, nick); err != nil {
		log.Printf("onboarding: setting nickname: %v", err)
	}
}
